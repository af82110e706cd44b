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

package extension

import (
	"fmt"
	"reflect"
	"strings"

	goset "github.com/deckarep/golang-set/v2"

	"github.com/tochemey/spi/catalog"
	gerrors "github.com/tochemey/spi/errors"
	"github.com/tochemey/spi/internal/discovery"
	"github.com/tochemey/spi/internal/holder"
	"github.com/tochemey/spi/internal/xsync"
)

// loader caches the discovery result and the instances of one contract
type loader struct {
	registry *Registry
	contract *Contract
	policy   IsolationPolicy

	result     *holder.Cell[*discovery.Result]
	namedCells *xsync.Map[string, *holder.Cell[any]]
	keyedCells *xsync.Map[string, *holder.Cell[any]]
}

func newLoader(r *Registry, contract *Contract, policy IsolationPolicy) *loader {
	return &loader{
		registry:   r,
		contract:   contract,
		policy:     policy,
		result:     holder.New[*discovery.Result](),
		namedCells: xsync.NewMap[string, *holder.Cell[any]](),
		keyedCells: xsync.NewMap[string, *holder.Cell[any]](),
	}
}

// discover returns the discovery result, running the discovery on first use.
// A failed discovery is attempted again on the next call.
func (l *loader) discover(primaryDir, fallbackDir string) (*discovery.Result, error) {
	return l.result.GetOrInit(func() (*discovery.Result, error) {
		return l.registry.discover(l.contract, l.policy, primaryDir, fallbackDir)
	})
}

func (l *loader) lookup(name, primaryDir, fallbackDir string) (*catalog.Factory, error) {
	result, err := l.discover(primaryDir, fallbackDir)
	if err != nil {
		return nil, err
	}
	factory, ok := result.Lookup(name)
	if !ok {
		return nil, gerrors.NewNotFoundError(l.contract.name, name)
	}
	return factory, nil
}

func (l *loader) named(name, primaryDir, fallbackDir string) (any, error) {
	if strings.TrimSpace(name) == "" {
		return nil, gerrors.ErrEmptyName
	}
	if name == defaultNameValue {
		instance, _, err := l.defaultInstance(primaryDir, fallbackDir)
		return instance, err
	}

	factory, err := l.lookup(name, primaryDir, fallbackDir)
	if err != nil {
		return nil, err
	}

	cell, _ := l.namedCells.LoadOrStore(name, holder.New[any])
	return cell.GetOrInit(func() (any, error) {
		return l.registry.shared(l.contract, name, factory)
	})
}

func (l *loader) keyedInstance(name, key, primaryDir, fallbackDir string) (any, error) {
	if strings.TrimSpace(name) == "" {
		return nil, gerrors.ErrEmptyName
	}
	if name == defaultNameValue {
		instance, _, err := l.defaultInstance(primaryDir, fallbackDir)
		return instance, err
	}

	factory, err := l.lookup(name, primaryDir, fallbackDir)
	if err != nil {
		return nil, err
	}

	cell, _ := l.keyedCells.LoadOrStore(name+"-"+strings.TrimSpace(key), holder.New[any])
	return cell.GetOrInit(func() (any, error) {
		return l.registry.create(l.contract, name, factory)
	})
}

func (l *loader) defaultInstance(primaryDir, fallbackDir string) (any, bool, error) {
	if _, err := l.discover(primaryDir, fallbackDir); err != nil {
		return nil, false, err
	}
	if !l.contract.hasDefault() {
		return nil, false, nil
	}
	instance, err := l.named(l.contract.defaultName, primaryDir, fallbackDir)
	if err != nil {
		return nil, false, err
	}
	return instance, true, nil
}

// names returns the discovered names, or nil before discovery ran
func (l *loader) names() []string {
	result, ok := l.result.Get()
	if !ok {
		return nil
	}
	return result.Names()
}

func (l *loader) errors() map[string]error {
	result, ok := l.result.Get()
	if !ok {
		return map[string]error{}
	}
	return result.Ledger().Errors()
}

func (l *loader) nameOf(instance any) (string, bool) {
	if instance == nil {
		return "", false
	}
	result, ok := l.result.Get()
	if !ok {
		return "", false
	}
	return result.NameOf(reflect.TypeOf(instance))
}

// Loader resolves the extensions of the contract T
type Loader[T any] struct {
	core *loader
}

// LoaderOf returns the loader of the contract T using the registry's
// default isolation policy
func LoaderOf[T any](r *Registry) (*Loader[T], error) {
	return LoaderWithPolicy[T](r, r.defaultPolicy)
}

// LoaderWithPolicy returns the loader of the contract T. The policy of the
// first loader created for T is kept for the lifetime of the registry.
func LoaderWithPolicy[T any](r *Registry, policy IsolationPolicy) (*Loader[T], error) {
	core, err := r.loaderFor(reflect.TypeFor[T](), policy)
	if err != nil {
		return nil, err
	}
	return &Loader[T]{core: core}, nil
}

// Contract returns the contract declaration
func (l *Loader[T]) Contract() *Contract {
	return l.core.contract
}

// Policy returns the isolation policy bundles are loaded with
func (l *Loader[T]) Policy() IsolationPolicy {
	return l.core.policy
}

// Extension returns the instance registered under name. The name "true"
// selects the default extension and yields the zero value when the
// contract declares none. The plugin directories are only used by the
// first call, which runs the discovery.
func (l *Loader[T]) Extension(name, primaryDir, fallbackDir string) (T, error) {
	instance, err := l.core.named(name, primaryDir, fallbackDir)
	return cast[T](l.core.contract, name, instance, err)
}

// ExtensionWithKey returns the instance registered under name for key.
// Each key gets its own instance, even for names sharing one implementation.
// The name "true" ignores key and returns the shared default instance.
func (l *Loader[T]) ExtensionWithKey(name, key, primaryDir, fallbackDir string) (T, error) {
	instance, err := l.core.keyedInstance(name, key, primaryDir, fallbackDir)
	return cast[T](l.core.contract, name, instance, err)
}

// DefaultExtension returns the default extension of the contract. It
// returns false when the contract declares no default.
func (l *Loader[T]) DefaultExtension(primaryDir, fallbackDir string) (T, bool, error) {
	instance, ok, err := l.core.defaultInstance(primaryDir, fallbackDir)
	if err != nil || !ok {
		var zero T
		return zero, false, err
	}
	value, err := cast[T](l.core.contract, l.core.contract.defaultName, instance, nil)
	return value, err == nil, err
}

// Names returns the discovered extension names in sorted order. It is
// empty until the discovery ran.
func (l *Loader[T]) Names() []string {
	return l.core.names()
}

// NamesSet returns the discovered extension names as a set
func (l *Loader[T]) NamesSet() goset.Set[string] {
	return goset.NewSet(l.core.names()...)
}

// Errors returns the descriptor lines that failed to load. Each key is the
// full line text with its comment stripped, aliases included.
func (l *Loader[T]) Errors() map[string]error {
	return l.core.errors()
}

// NameOf returns the first name the implementation of instance is registered under
func (l *Loader[T]) NameOf(instance T) (string, bool) {
	return l.core.nameOf(instance)
}

// String describes the loader
func (l *Loader[T]) String() string {
	return fmt.Sprintf("ExtensionLoader[%s]", l.core.contract.name)
}

func cast[T any](contract *Contract, name string, instance any, err error) (T, error) {
	var zero T
	if err != nil || instance == nil {
		return zero, err
	}
	value, ok := instance.(T)
	if !ok {
		return zero, gerrors.NewInstantiationError(contract.name, name,
			gerrors.NewErrNotSubtype(reflect.TypeOf(instance).String(), contract.name))
	}
	return value, nil
}
