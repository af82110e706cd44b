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

package catalog

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	gerrors "github.com/tochemey/spi/errors"
)

type sink interface {
	Write(string) error
}

type consoleSink struct {
	prefix string
}

func (x *consoleSink) Write(string) error { return nil }

func TestProvide(t *testing.T) {
	t.Run("With a constructor", func(t *testing.T) {
		c := New()
		require.NoError(t, Provide(c, "acme.ConsoleSink", func() (*consoleSink, error) {
			return &consoleSink{prefix: "> "}, nil
		}))

		factory, ok := c.Lookup("acme.ConsoleSink")
		require.True(t, ok)
		assert.Equal(t, "acme.ConsoleSink", factory.ID)
		assert.Equal(t, reflect.TypeOf(&consoleSink{}), factory.Type)

		instance, err := factory.New()
		require.NoError(t, err)
		require.IsType(t, &consoleSink{}, instance)
		assert.Equal(t, "> ", instance.(*consoleSink).prefix)

		// every call builds a fresh instance
		other, err := factory.New()
		require.NoError(t, err)
		assert.NotSame(t, instance, other)
	})
	t.Run("With a failing constructor", func(t *testing.T) {
		c := New()
		boom := errors.New("boom")
		require.NoError(t, Provide(c, "acme.Broken", func() (*consoleSink, error) {
			return nil, boom
		}))
		factory, ok := c.Lookup("acme.Broken")
		require.True(t, ok)
		_, err := factory.New()
		require.ErrorIs(t, err, boom)
	})
	t.Run("With ProvideType", func(t *testing.T) {
		c := New()
		require.NoError(t, ProvideType[consoleSink](c, "acme.ConsoleSink"))
		factory, ok := c.Lookup("acme.ConsoleSink")
		require.True(t, ok)
		assert.Equal(t, reflect.TypeOf(&consoleSink{}), factory.Type)
		instance, err := factory.New()
		require.NoError(t, err)
		assert.Implements(t, (*sink)(nil), instance)
	})
	t.Run("With duplicate identifier", func(t *testing.T) {
		c := New()
		require.NoError(t, ProvideType[consoleSink](c, "acme.ConsoleSink"))
		err := ProvideType[consoleSink](c, "acme.ConsoleSink")
		require.ErrorIs(t, err, gerrors.ErrFactoryExists)
		assert.Equal(t, 1, c.Len())
	})
	t.Run("With interface type", func(t *testing.T) {
		c := New()
		err := Provide(c, "acme.Sink", func() (sink, error) { return &consoleSink{}, nil })
		require.ErrorIs(t, err, gerrors.ErrInvalidFactory)
		assert.Zero(t, c.Len())
	})
	t.Run("With invalid identifiers", func(t *testing.T) {
		c := New()
		for _, id := range []string{"", "  ", "acme.A B", "a=b", "a,b", "a#b"} {
			err := ProvideType[consoleSink](c, id)
			require.ErrorIs(t, err, gerrors.ErrInvalidFactory, "id %q", id)
		}
		assert.Zero(t, c.Len())
	})
	t.Run("With nil constructor", func(t *testing.T) {
		c := New()
		err := Provide[*consoleSink](c, "acme.ConsoleSink", nil)
		require.ErrorIs(t, err, gerrors.ErrInvalidFactory)
	})
}

func TestMustProvide(t *testing.T) {
	c := New()
	assert.NotPanics(t, func() { MustProvideType[consoleSink](c, "acme.ConsoleSink") })
	assert.Panics(t, func() { MustProvideType[consoleSink](c, "acme.ConsoleSink") })
	assert.Panics(t, func() {
		MustProvide(c, "acme.Sink", func() (sink, error) { return nil, nil })
	})
}

func TestIDs(t *testing.T) {
	c := New()
	require.NoError(t, ProvideType[consoleSink](c, "b"))
	require.NoError(t, ProvideType[consoleSink](c, "a"))
	require.NoError(t, ProvideType[consoleSink](c, "c"))
	assert.Equal(t, []string{"a", "b", "c"}, c.IDs())

	_, ok := c.Lookup("d")
	assert.False(t, ok)

	var empty *Catalog
	_, ok = empty.Lookup("a")
	assert.False(t, ok)
	assert.Empty(t, empty.Mounts())
}

func TestConcurrentProvide(t *testing.T) {
	c := New()
	eg := new(errgroup.Group)
	for i := 0; i < 50; i++ {
		eg.Go(func() error {
			return ProvideType[consoleSink](c, "acme.Sink"+strconv.Itoa(i%10))
		})
	}
	err := eg.Wait()
	require.ErrorIs(t, err, gerrors.ErrFactoryExists)
	assert.Equal(t, 10, c.Len())
}

func TestMount(t *testing.T) {
	c := New()
	first := fstest.MapFS{"META-INF/services/acme.Sink": {Data: []byte("console=acme.ConsoleSink")}}
	second := fstest.MapFS{}
	c.Mount(first)
	c.Mount(nil)
	c.Mount(second)

	mounts := c.Mounts()
	require.Len(t, mounts, 2)
	assert.Equal(t, first, mounts[0])
	assert.Equal(t, second, mounts[1])

	// the returned slice is a copy
	mounts[0] = nil
	assert.NotNil(t, c.Mounts()[0])
}
