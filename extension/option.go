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
	"github.com/tochemey/spi/catalog"
	"github.com/tochemey/spi/internal/loading"
	"github.com/tochemey/spi/log"
	"github.com/tochemey/spi/telemetry"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(registry *Registry)
}

var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Registry)

// Apply applies the Registry's option
func (f OptionFunc) Apply(r *Registry) {
	f(r)
}

// WithLogger sets the registry logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(r *Registry) {
		r.logger = logger
	})
}

// WithBaseDir sets the directory plugin directory names are resolved
// against. The running executable's directory is used by default.
func WithBaseDir(dir string) Option {
	return OptionFunc(func(r *Registry) {
		r.baseDir = dir
	})
}

// WithBundleSuffix sets the file name suffix of plugin bundles. Default: ".zip"
func WithBundleSuffix(suffix string) Option {
	return OptionFunc(func(r *Registry) {
		r.bundleSuffix = suffix
	})
}

// WithVendorNamespace sets the descriptor namespace scanned first. Default: "META-INF/canal/"
func WithVendorNamespace(namespace string) Option {
	return OptionFunc(func(r *Registry) {
		r.vendorNamespace = namespace
	})
}

// WithServicesNamespace sets the standard descriptor namespace. Default: "META-INF/services/"
func WithServicesNamespace(namespace string) Option {
	return OptionFunc(func(r *Registry) {
		r.servicesNamespace = namespace
	})
}

// WithHostCatalog sets the catalog of the host process. Default: catalog.Default
func WithHostCatalog(c *catalog.Catalog) Option {
	return OptionFunc(func(r *Registry) {
		r.host = c
	})
}

// WithOpener sets how the shared objects of plugin bundles are opened
func WithOpener(opener loading.Opener) Option {
	return OptionFunc(func(r *Registry) {
		r.opener = opener
	})
}

// WithPluginSymbol sets the symbol shared objects export their catalog under. Default: "Extensions"
func WithPluginSymbol(symbol string) Option {
	return OptionFunc(func(r *Registry) {
		r.pluginSymbol = symbol
	})
}

// WithExtractDir sets the directory shared objects are extracted to before being opened
func WithExtractDir(dir string) Option {
	return OptionFunc(func(r *Registry) {
		r.extractDir = dir
	})
}

// WithTelemetry sets the telemetry the registry records its metrics with
func WithTelemetry(t *telemetry.Telemetry) Option {
	return OptionFunc(func(r *Registry) {
		r.telemetry = t
	})
}

// WithDefaultPolicy sets the isolation policy of loaders created through
// LoaderOf and the Provider methods. Default: Isolated
func WithDefaultPolicy(policy IsolationPolicy) Option {
	return OptionFunc(func(r *Registry) {
		r.defaultPolicy = policy
	})
}
