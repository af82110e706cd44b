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
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/multierr"

	"github.com/tochemey/spi/catalog"
)

type hostContext struct {
	catalog *catalog.Catalog
}

var _ Context = (*hostContext)(nil)

// NewHostContext creates the context of the host process. Resources are
// read from the catalog's mounted file systems and identifiers resolve
// against the catalog itself.
func NewHostContext(c *catalog.Catalog) Context {
	if c == nil {
		c = catalog.New()
	}
	return &hostContext{catalog: c}
}

// Resources implements Context
func (x *hostContext) Resources(path string) ([]Resource, error) {
	var (
		resources []Resource
		err       error
	)
	for index, mount := range x.catalog.Mounts() {
		data, readErr := fs.ReadFile(mount, path)
		if readErr != nil {
			if !errors.Is(readErr, fs.ErrNotExist) {
				err = multierr.Append(err, fmt.Errorf("mount=(%d) resource=(%s): %w", index, path, readErr))
			}
			continue
		}
		resources = append(resources, Resource{
			Location: fmt.Sprintf("host[%d]:%s", index, path),
			Data:     data,
		})
	}
	return resources, err
}

// Resolve implements Context
func (x *hostContext) Resolve(identifier string) (*catalog.Factory, bool) {
	return x.catalog.Lookup(identifier)
}

// Close implements Context
func (x *hostContext) Close() error {
	return nil
}

// String implements Context
func (x *hostContext) String() string {
	return "host"
}
