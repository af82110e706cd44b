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

// Package catalog holds the factory tables extension implementations are
// resolved from.
//
// The host process registers its built-in implementations in Default,
// usually from package init functions, and mounts the file systems that
// carry its descriptor resources. Plugin shared objects export a Catalog
// of their own.
package catalog

import (
	"fmt"
	"io/fs"
	"reflect"
	"regexp"
	"sync"

	gerrors "github.com/tochemey/spi/errors"
	"github.com/tochemey/spi/internal/validation"
	"github.com/tochemey/spi/internal/xsync"
)

// identifierPattern matches identifiers that can be written on a descriptor line
var identifierPattern = regexp.MustCompile(`^[^\s#=,]+$`)

// Default is the host process catalog
var Default = New()

// Factory constructs one implementation
type Factory struct {
	// ID is the identifier descriptor lines refer to
	ID string
	// Type is the concrete type returned by New
	Type reflect.Type
	// New builds a fresh instance
	New func() (any, error)
}

// Catalog maps implementation identifiers to factories.
// It is safe for concurrent use.
type Catalog struct {
	factories *xsync.Map[string, *Factory]

	mu     sync.RWMutex
	mounts []fs.FS
}

// New creates an empty Catalog
func New() *Catalog {
	return &Catalog{
		factories: xsync.NewMap[string, *Factory](),
	}
}

// Provide registers ctor under id. T must be a concrete type.
func Provide[T any](c *Catalog, id string, ctor func() (T, error)) error {
	rtype := reflect.TypeFor[T]()
	if err := validation.New(validation.FailFast()).
		AddAssertion(ctor != nil, gerrors.NewErrInvalidFactory(id, "constructor is nil")).
		AddValidator(validation.NewEmptyStringValidator(id, gerrors.NewErrInvalidFactory(id, "identifier is required"))).
		AddValidator(validation.NewPatternValidator(identifierPattern, id, gerrors.NewErrInvalidFactory(id, "identifier contains reserved characters"))).
		AddAssertion(rtype.Kind() != reflect.Interface, gerrors.NewErrInvalidFactory(id, fmt.Sprintf("%s is an interface", rtype))).
		Validate(); err != nil {
		return err
	}

	return c.register(&Factory{
		ID:   id,
		Type: rtype,
		New: func() (any, error) {
			return ctor()
		},
	})
}

// ProvideType registers *T under id, built with new(T).
func ProvideType[T any](c *Catalog, id string) error {
	return Provide(c, id, func() (*T, error) {
		return new(T), nil
	})
}

// MustProvide is like Provide but panics on error
func MustProvide[T any](c *Catalog, id string, ctor func() (T, error)) {
	if err := Provide(c, id, ctor); err != nil {
		panic(err)
	}
}

// MustProvideType is like ProvideType but panics on error
func MustProvideType[T any](c *Catalog, id string) {
	if err := ProvideType[T](c, id); err != nil {
		panic(err)
	}
}

func (c *Catalog) register(factory *Factory) error {
	_, loaded := c.factories.LoadOrStore(factory.ID, func() *Factory {
		return factory
	})
	if loaded {
		return gerrors.NewErrFactoryExists(factory.ID)
	}
	return nil
}

// Lookup returns the factory registered under id
func (c *Catalog) Lookup(id string) (*Factory, bool) {
	if c == nil {
		return nil, false
	}
	return c.factories.Get(id)
}

// IDs returns the registered identifiers in sorted order
func (c *Catalog) IDs() []string {
	return xsync.SortedKeys(c.factories)
}

// Len returns the number of registered factories
func (c *Catalog) Len() int {
	return c.factories.Len()
}

// Mount adds a file system the catalog's descriptor resources are read from.
// Mounts are searched in the order they were added.
func (c *Catalog) Mount(fsys fs.FS) {
	if fsys == nil {
		return
	}
	c.mu.Lock()
	c.mounts = append(c.mounts, fsys)
	c.mu.Unlock()
}

// Mounts returns the mounted file systems
func (c *Catalog) Mounts() []fs.FS {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]fs.FS, len(c.mounts))
	copy(out, c.mounts)
	return out
}
