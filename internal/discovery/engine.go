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

// Package discovery builds the name to implementation map of a contract
// from the host process and the plugin bundles found on disk.
package discovery

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/tochemey/spi/catalog"
	gerrors "github.com/tochemey/spi/errors"
	"github.com/tochemey/spi/internal/descriptor"
	"github.com/tochemey/spi/internal/loading"
	"github.com/tochemey/spi/internal/osutil"
	"github.com/tochemey/spi/log"
)

const (
	// DefaultBundleSuffix marks plugin bundle files
	DefaultBundleSuffix = ".zip"
	// DefaultVendorNamespace is scanned before the standard namespace
	DefaultVendorNamespace = "META-INF/canal/"
	// DefaultServicesNamespace is the standard descriptor namespace
	DefaultServicesNamespace = "META-INF/services/"
)

// Target identifies the contract being discovered
type Target struct {
	// Type is the contract interface type
	Type reflect.Type
	// Name is the fully-qualified contract name descriptor resources are named after
	Name string
}

// Engine discovers the implementations of contracts
type Engine struct {
	factory    *loading.Factory
	baseDir    string
	suffix     string
	namespaces []string
	logger     log.Logger
}

// NewEngine creates an Engine resolving bundles with factory
func NewEngine(factory *loading.Factory, opts ...Option) *Engine {
	engine := &Engine{
		factory:    factory,
		suffix:     DefaultBundleSuffix,
		namespaces: []string{DefaultVendorNamespace, DefaultServicesNamespace},
		logger:     log.DiscardLogger,
	}
	for _, opt := range opts {
		opt.Apply(engine)
	}
	if engine.factory == nil {
		engine.factory = loading.NewFactory(nil, loading.WithLogger(engine.logger))
	}
	return engine
}

// Namespaces returns the resource paths scanned for contract, in scan order
func (e *Engine) Namespaces(contract string) []string {
	paths := make([]string, 0, len(e.namespaces))
	for _, namespace := range e.namespaces {
		paths = append(paths, path.Join(namespace, contract))
	}
	return paths
}

// ExternalDir returns the plugin directory to scan. It returns false when
// neither directory name is set or none of them exists.
func (e *Engine) ExternalDir(primaryDir, fallbackDir string) (string, bool, error) {
	if primaryDir == "" && fallbackDir == "" {
		return "", false, nil
	}

	base := e.baseDir
	if base == "" {
		dir, err := osutil.InstallDir()
		if err != nil {
			return "", false, fmt.Errorf("failed to resolve the install directory: %w", err)
		}
		base = dir
	}

	for _, name := range []string{primaryDir, fallbackDir} {
		if name == "" {
			continue
		}
		candidate := filepath.Join(base, name)
		if osutil.IsDir(candidate) {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

// Bundles lists the bundle files of dir in name order
func (e *Engine) Bundles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	bundles := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), e.suffix) {
			continue
		}
		bundle := filepath.Join(dir, entry.Name())
		info, err := os.Stat(bundle)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		bundles = append(bundles, bundle)
	}
	sort.Strings(bundles)
	return bundles, nil
}

// Discover builds the extension map of target. Bundles found in the plugin
// directory are scanned first, in name order, then the host process.
// Two distinct implementations claiming one name fail the discovery.
func (e *Engine) Discover(target Target, policy loading.Policy, primaryDir, fallbackDir string) (*Result, error) {
	result := newResult()

	dir, ok, err := e.ExternalDir(primaryDir, fallbackDir)
	if err != nil {
		return nil, err
	}

	if !ok {
		e.logger.Debugf("no plugin directory for contract %s (primary=%q fallback=%q)", target.Name, primaryDir, fallbackDir)
	} else {
		e.logger.Infof("loading %s extensions from %s", target.Name, dir)
		bundles, err := e.Bundles(dir)
		if err != nil {
			e.logger.Errorf("failed to list plugin directory %s: %v", dir, err)
		}
		for _, bundle := range bundles {
			ctx, err := e.factory.Create(bundle, policy)
			if err != nil {
				return nil, err
			}
			err = e.scan(ctx, target, result)
			if closeErr := ctx.Close(); closeErr != nil {
				e.logger.Warnf("failed to close bundle %s: %v", bundle, closeErr)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	if err := e.scan(e.factory.Host(), target, result); err != nil {
		return nil, err
	}
	return result, nil
}

// scan merges the descriptor entries ctx carries for target into result
func (e *Engine) scan(ctx loading.Context, target Target, result *Result) error {
	for _, resourcePath := range e.Namespaces(target.Name) {
		resources, err := ctx.Resources(resourcePath)
		if err != nil {
			e.logger.Errorf("failed to read descriptor %s from %s: %v", resourcePath, ctx, err)
		}

		for _, resource := range resources {
			entries, err := descriptor.ParseBytes(resource.Data)
			if err != nil {
				e.logger.Errorf("failed to parse descriptor %s: %v", resource.Location, err)
			}

			for _, entry := range entries {
				if err := e.merge(ctx, target, entry, result); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (e *Engine) merge(ctx loading.Context, target Target, entry descriptor.Entry, result *Result) error {
	factory, ok := ctx.Resolve(entry.Identifier)
	if !ok {
		e.record(result, entry, gerrors.NewErrUnresolvableIdentifier(entry.Identifier))
		return nil
	}

	if !implements(factory, target.Type) {
		e.record(result, entry, gerrors.NewErrNotSubtype(entry.Identifier, target.Name))
		return nil
	}

	for _, name := range entry.Names {
		existing, ok := result.extensions[name]
		if ok {
			if existing.Type == factory.Type {
				continue
			}
			return gerrors.NewDuplicateError(target.Name, name, existing.ID, factory.ID)
		}

		result.extensions[name] = factory
		if _, ok := result.names[factory.Type]; !ok {
			result.names[factory.Type] = name
		}
	}
	return nil
}

func (e *Engine) record(result *Result, entry descriptor.Entry, err error) {
	e.logger.Warnf("skipping descriptor line %q: %v", entry.Text, err)
	result.ledger.Record(entry.Text, err)
}

func implements(factory *catalog.Factory, contract reflect.Type) bool {
	if factory.Type == nil || contract == nil {
		return false
	}
	if contract.Kind() == reflect.Interface {
		return factory.Type.Implements(contract)
	}
	return factory.Type.AssignableTo(contract)
}
