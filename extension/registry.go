// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package extension discovers, loads and caches named implementations of
// extensible contracts.
//
// A contract is an interface type declared with Declare. Its
// implementations are listed in descriptor resources, either mounted in
// the host catalog or shipped inside plugin bundles placed in a directory
// next to the running binary:
//
//	r := extension.NewRegistry()
//	extension.MustDeclare[Sink](r, extension.WithDefaultName("console"))
//	loader, _ := extension.LoaderOf[Sink](r)
//	sink, err := loader.Extension("kafka", "plugin", "")
//
// Discovery of a contract runs once, on the first lookup. Instances are
// created once per name and shared between the names of one implementation.
package extension

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/tochemey/spi/catalog"
	gerrors "github.com/tochemey/spi/errors"
	"github.com/tochemey/spi/internal/discovery"
	"github.com/tochemey/spi/internal/holder"
	"github.com/tochemey/spi/internal/loading"
	"github.com/tochemey/spi/internal/xsync"
	"github.com/tochemey/spi/log"
	"github.com/tochemey/spi/metric"
	"github.com/tochemey/spi/telemetry"
)

// Provider is the lookup surface the registry offers to the component that
// bootstraps the process
type Provider interface {
	// LoadNamedExtension returns the instance registered under name for contract
	LoadNamedExtension(contract reflect.Type, name, primaryDir, fallbackDir string) (any, error)
	// LoadDefaultExtension returns the default instance of contract. It returns
	// false when the contract declares no default.
	LoadDefaultExtension(contract reflect.Type, primaryDir, fallbackDir string) (any, bool, error)
}

// Registry holds the declared contracts, their loaders and the instances
// they created. It is safe for concurrent use.
type Registry struct {
	logger            log.Logger
	baseDir           string
	bundleSuffix      string
	vendorNamespace   string
	servicesNamespace string
	host              *catalog.Catalog
	opener            loading.Opener
	pluginSymbol      string
	extractDir        string
	telemetry         *telemetry.Telemetry
	defaultPolicy     IsolationPolicy

	engine *discovery.Engine
	metric *metric.RegistryMetric

	contracts *xsync.Map[reflect.Type, *Contract]
	loaders   *xsync.Map[reflect.Type, *loader]
	// instances is keyed by the concrete implementation type
	instances *xsync.Map[reflect.Type, *holder.Cell[any]]
}

var _ Provider = (*Registry)(nil)

// NewRegistry creates a Registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:            log.DefaultLogger,
		bundleSuffix:      discovery.DefaultBundleSuffix,
		vendorNamespace:   discovery.DefaultVendorNamespace,
		servicesNamespace: discovery.DefaultServicesNamespace,
		host:              catalog.Default,
		opener:            loading.PluginOpener,
		pluginSymbol:      loading.DefaultSymbol,
		extractDir:        loading.DefaultExtractDir(),
		defaultPolicy:     Isolated,
		contracts:         xsync.NewMap[reflect.Type, *Contract](),
		loaders:           xsync.NewMap[reflect.Type, *loader](),
		instances:         xsync.NewMap[reflect.Type, *holder.Cell[any]](),
	}

	for _, opt := range opts {
		opt.Apply(r)
	}

	if r.logger == nil {
		r.logger = log.DiscardLogger
	}
	if r.host == nil {
		r.host = catalog.Default
	}
	if r.telemetry == nil {
		r.telemetry = telemetry.New()
	}

	registryMetric, err := metric.NewRegistryMetric(r.telemetry.Meter())
	if err != nil {
		r.logger.Warnf("registry metrics are disabled: %v", err)
	}
	r.metric = registryMetric

	factory := loading.NewFactory(r.host,
		loading.WithOpener(r.opener),
		loading.WithSymbol(r.pluginSymbol),
		loading.WithExtractDir(r.extractDir),
		loading.WithLogger(r.logger))

	r.engine = discovery.NewEngine(factory,
		discovery.WithBaseDir(r.baseDir),
		discovery.WithBundleSuffix(r.bundleSuffix),
		discovery.WithNamespaces(r.vendorNamespace, r.servicesNamespace),
		discovery.WithLogger(r.logger))

	return r
}

// LoadNamedExtension implements Provider
func (r *Registry) LoadNamedExtension(contract reflect.Type, name, primaryDir, fallbackDir string) (any, error) {
	l, err := r.loaderFor(contract, r.defaultPolicy)
	if err != nil {
		return nil, err
	}
	return l.named(name, primaryDir, fallbackDir)
}

// LoadDefaultExtension implements Provider
func (r *Registry) LoadDefaultExtension(contract reflect.Type, primaryDir, fallbackDir string) (any, bool, error) {
	l, err := r.loaderFor(contract, r.defaultPolicy)
	if err != nil {
		return nil, false, err
	}
	return l.defaultInstance(primaryDir, fallbackDir)
}

// loaderFor returns the loader of contract, creating it with policy on first use
func (r *Registry) loaderFor(rtype reflect.Type, policy IsolationPolicy) (*loader, error) {
	if err := requireInterface(rtype); err != nil {
		return nil, err
	}

	contract, ok := r.contracts.Get(rtype)
	if !ok {
		return nil, gerrors.NewErrNotExtensible(rtype.String())
	}

	l, _ := r.loaders.LoadOrStore(rtype, func() *loader {
		return newLoader(r, contract, policy)
	})
	return l, nil
}

// discover runs the discovery of contract and records its metrics
func (r *Registry) discover(contract *Contract, policy IsolationPolicy, primaryDir, fallbackDir string) (*discovery.Result, error) {
	start := time.Now()
	result, err := r.engine.Discover(discovery.Target{Type: contract.rtype, Name: contract.name}, policy, primaryDir, fallbackDir)
	if err != nil {
		r.logger.Errorf("discovery of %s failed: %v", contract.name, err)
		return nil, err
	}

	if r.metric != nil {
		r.metric.RecordDiscovery(context.Background(), contract.name, time.Since(start), result.Ledger().Len())
	}
	r.logger.Debugf("discovered %d extension names for %s", result.Len(), contract.name)
	return result, nil
}

// shared returns the instance of the factory's implementation type,
// creating it on first use
func (r *Registry) shared(contract *Contract, name string, factory *catalog.Factory) (any, error) {
	cell, _ := r.instances.LoadOrStore(factory.Type, holder.New[any])
	return cell.GetOrInit(func() (any, error) {
		return r.create(contract, name, factory)
	})
}

// create builds a fresh instance. Constructor panics are returned as errors.
func (r *Registry) create(contract *Contract, name string, factory *catalog.Factory) (instance any, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			cause, ok := recovered.(error)
			if !ok {
				cause = fmt.Errorf("%v", recovered)
			}
			instance = nil
			err = gerrors.NewInstantiationError(contract.name, name, gerrors.NewPanicError(cause))
		}
		if r.metric != nil {
			r.metric.RecordInstantiation(context.Background(), contract.name, err)
		}
		if err != nil {
			r.logger.Errorf("failed to create extension %s of %s: %v", name, contract.name, err)
		}
	}()

	instance, err = factory.New()
	if err != nil {
		return nil, gerrors.NewInstantiationError(contract.name, name, err)
	}
	if instance == nil {
		return nil, gerrors.NewInstantiationError(contract.name, name, fmt.Errorf("factory %s returned a nil instance", factory.ID))
	}
	return instance, nil
}
