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

package discovery

import (
	"reflect"
	"sort"

	"github.com/tochemey/spi/catalog"
)

// Result is the outcome of discovering one contract. It is immutable.
type Result struct {
	extensions map[string]*catalog.Factory
	names      map[reflect.Type]string
	ledger     *Ledger
}

func newResult() *Result {
	return &Result{
		extensions: make(map[string]*catalog.Factory),
		names:      make(map[reflect.Type]string),
		ledger:     NewLedger(),
	}
}

// Lookup returns the factory registered under name
func (r *Result) Lookup(name string) (*catalog.Factory, bool) {
	factory, ok := r.extensions[name]
	return factory, ok
}

// Names returns the discovered names in sorted order
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.extensions))
	for name := range r.extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NameOf returns the first name the implementation type was registered under
func (r *Result) NameOf(rtype reflect.Type) (string, bool) {
	name, ok := r.names[rtype]
	return name, ok
}

// Len returns the number of discovered names
func (r *Result) Len() int {
	return len(r.extensions)
}

// Ledger returns the descriptor lines that failed to load, keyed by line text
func (r *Result) Ledger() *Ledger {
	return r.ledger
}
