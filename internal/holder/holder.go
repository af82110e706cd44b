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

// Package holder provides a single-assignment cell guarding the lazy,
// thread-safe construction of one cached value.
package holder

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/tochemey/spi/internal/locker"
)

// Cell holds at most one value. Once set, the value is never replaced.
//
// Reads are lock-free. Construction is serialized on the cell's own
// mutex, so two cells never block each other. A failed construction
// leaves the cell empty and the next caller retries.
type Cell[T any] struct {
	_     locker.NoCopy
	mu    sync.Mutex
	value atomic.Pointer[T]
}

// New creates an empty Cell
func New[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Get returns the held value, if any
func (c *Cell[T]) Get() (T, bool) {
	if v := c.value.Load(); v != nil {
		return *v, true
	}
	var zero T
	return zero, false
}

// GetOrInit returns the held value, calling init to produce it when the
// cell is empty. init runs at most once per successful assignment; its
// error is returned to the caller and nothing is stored.
func (c *Cell[T]) GetOrInit(init func() (T, error)) (T, error) {
	if v := c.value.Load(); v != nil {
		return *v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// another caller may have won the race while we were waiting
	if v := c.value.Load(); v != nil {
		return *v, nil
	}

	v, err := init()
	if err != nil {
		var zero T
		return zero, err
	}
	c.value.Store(&v)
	return v, nil
}
