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
	"plugin"

	"github.com/tochemey/spi/catalog"
	gerrors "github.com/tochemey/spi/errors"
)

// DefaultSymbol is the symbol a shared object exports its catalog under
const DefaultSymbol = "Extensions"

// Symbols looks up the exported symbols of an opened shared object
type Symbols interface {
	Lookup(name string) (plugin.Symbol, error)
}

// Opener opens shared objects
type Opener interface {
	Open(path string) (Symbols, error)
}

// OpenerFunc implements Opener
type OpenerFunc func(path string) (Symbols, error)

// Open implements Opener
func (f OpenerFunc) Open(path string) (Symbols, error) {
	return f(path)
}

// PluginOpener opens shared objects with the Go plugin runtime
var PluginOpener Opener = OpenerFunc(func(path string) (Symbols, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return p, nil
})

// catalogOf extracts the catalog exported under symbol
func catalogOf(symbols Symbols, symbol string) (*catalog.Catalog, error) {
	value, err := symbols.Lookup(symbol)
	if err != nil {
		return nil, err
	}

	var out *catalog.Catalog
	switch v := value.(type) {
	case *catalog.Catalog:
		out = v
	case **catalog.Catalog:
		if v != nil {
			out = *v
		}
	case func() *catalog.Catalog:
		if v != nil {
			out = v()
		}
	}

	if out == nil {
		return nil, gerrors.NewErrInvalidSymbol(symbol, value)
	}
	return out, nil
}
