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
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/klauspost/compress/zip"
	"go.uber.org/multierr"

	"github.com/tochemey/spi/catalog"
	"github.com/tochemey/spi/log"
)

// bundleContext reads a plugin bundle archive
type bundleContext struct {
	path   string
	policy Policy
	host   *catalog.Catalog
	opener Opener
	symbol string
	dir    string
	logger log.Logger

	mu       sync.Mutex
	archive  *zip.ReadCloser
	entries  map[string][]*zip.File
	loaded   bool
	catalogs []*catalog.Catalog
}

var _ Context = (*bundleContext)(nil)

func openBundle(bundlePath string) (*zip.ReadCloser, map[string][]*zip.File, error) {
	archive, err := zip.OpenReader(bundlePath)
	if err != nil {
		return nil, nil, err
	}

	entries := make(map[string][]*zip.File, len(archive.File))
	for _, file := range archive.File {
		if file.FileInfo().IsDir() {
			continue
		}
		name := strings.TrimPrefix(path.Clean(file.Name), "/")
		entries[name] = append(entries[name], file)
	}
	return archive, entries, nil
}

// Resources implements Context
func (x *bundleContext) Resources(name string) ([]Resource, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.archive == nil {
		return nil, fmt.Errorf("bundle=(%s) is closed", x.path)
	}

	var (
		resources []Resource
		err       error
	)
	for _, file := range x.entries[path.Clean(name)] {
		data, readErr := readEntry(file)
		if readErr != nil {
			err = multierr.Append(err, fmt.Errorf("bundle=(%s) resource=(%s): %w", x.path, name, readErr))
			continue
		}
		resources = append(resources, Resource{
			Location: fmt.Sprintf("%s!/%s", x.path, file.Name),
			Data:     data,
		})
	}
	return resources, err
}

// Resolve implements Context
func (x *bundleContext) Resolve(identifier string) (*catalog.Factory, bool) {
	if x.policy == Shared {
		if factory, ok := x.host.Lookup(identifier); ok {
			return factory, true
		}
	}

	for _, c := range x.bundleCatalogs() {
		if factory, ok := c.Lookup(identifier); ok {
			return factory, true
		}
	}
	return nil, false
}

// bundleCatalogs opens the bundle's shared objects on first use
func (x *bundleContext) bundleCatalogs() []*catalog.Catalog {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.loaded || x.archive == nil {
		return x.catalogs
	}
	x.loaded = true

	for _, name := range sortedKeys(x.entries) {
		if !strings.HasSuffix(name, sharedObjectSuffix) {
			continue
		}
		for _, file := range x.entries[name] {
			c, err := x.openSharedObject(file)
			if err != nil {
				x.logger.Errorf("failed to open shared object %s in bundle %s: %v", file.Name, x.path, err)
				continue
			}
			x.catalogs = append(x.catalogs, c)
		}
	}
	return x.catalogs
}

func (x *bundleContext) openSharedObject(file *zip.File) (*catalog.Catalog, error) {
	target, err := extract(file, x.dir)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	x.logger.Debugf("extracted shared object %s to %s", file.Name, target)

	symbols, err := x.opener.Open(target)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return catalogOf(symbols, x.symbol)
}

// Close implements Context
func (x *bundleContext) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.archive == nil {
		return nil
	}
	err := x.archive.Close()
	x.archive = nil
	x.entries = nil
	return err
}

// String implements Context
func (x *bundleContext) String() string {
	return fmt.Sprintf("bundle(%s, %s)", x.path, x.policy)
}

func readEntry(file *zip.File) ([]byte, error) {
	reader, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}
