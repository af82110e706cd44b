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

// Package loading builds the contexts descriptor resources are read from
// and implementation identifiers are resolved against.
package loading

import (
	"github.com/tochemey/spi/catalog"
)

// Resource is the content of one descriptor resource
type Resource struct {
	// Location names where the resource was read from
	Location string
	// Data is the raw resource content
	Data []byte
}

// Context reads descriptor resources and resolves implementation identifiers
type Context interface {
	// Resources returns every readable resource found at path. Resources that
	// exist but cannot be read are reported through the error while the
	// readable ones are still returned.
	Resources(path string) ([]Resource, error)
	// Resolve returns the factory registered under identifier
	Resolve(identifier string) (*catalog.Factory, bool)
	// Close releases the resources held by the context
	Close() error
	// String describes the context in log lines
	String() string
}
