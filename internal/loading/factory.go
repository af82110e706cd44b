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

package loading

import (
	"sort"

	"github.com/tochemey/spi/catalog"
	gerrors "github.com/tochemey/spi/errors"
	"github.com/tochemey/spi/log"
)

// Factory creates loading contexts for plugin bundles
type Factory struct {
	host   *catalog.Catalog
	opener Opener
	symbol string
	dir    string
	logger log.Logger
}

// FactoryOption configures a Factory
type FactoryOption func(*Factory)

// WithOpener sets the shared object opener
func WithOpener(opener Opener) FactoryOption {
	return func(f *Factory) {
		if opener != nil {
			f.opener = opener
		}
	}
}

// WithSymbol sets the symbol shared objects export their catalog under
func WithSymbol(symbol string) FactoryOption {
	return func(f *Factory) {
		if symbol != "" {
			f.symbol = symbol
		}
	}
}

// WithExtractDir sets the directory shared objects are extracted to
func WithExtractDir(dir string) FactoryOption {
	return func(f *Factory) {
		if dir != "" {
			f.dir = dir
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger log.Logger) FactoryOption {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFactory creates a Factory whose shared bundle contexts delegate to host
func NewFactory(host *catalog.Catalog, opts ...FactoryOption) *Factory {
	if host == nil {
		host = catalog.New()
	}
	factory := &Factory{
		host:   host,
		opener: PluginOpener,
		symbol: DefaultSymbol,
		dir:    DefaultExtractDir(),
		logger: log.DiscardLogger,
	}
	for _, opt := range opts {
		opt(factory)
	}
	return factory
}

// Host returns the host context
func (f *Factory) Host() Context {
	return NewHostContext(f.host)
}

// Create opens the bundle at bundlePath. A file that is not a readable
// archive fails with ErrInvalidBundle.
func (f *Factory) Create(bundlePath string, policy Policy) (Context, error) {
	archive, entries, err := openBundle(bundlePath)
	if err != nil {
		return nil, gerrors.NewErrInvalidBundle(bundlePath, err)
	}

	return &bundleContext{
		path:    bundlePath,
		policy:  policy,
		host:    f.host,
		opener:  f.opener,
		symbol:  f.symbol,
		dir:     f.dir,
		logger:  f.logger,
		archive: archive,
		entries: entries,
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
