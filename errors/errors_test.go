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

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	notFound := NewNotFoundError("acme.Sink", "redis")
	require.EqualError(t, notFound, "extension=(redis) contract=(acme.Sink): extension not found")
	assert.ErrorIs(t, notFound, ErrExtensionNotFound)
	assert.NotErrorIs(t, notFound, ErrInstantiationFailed)

	duplicate := NewDuplicateError("acme.Sink", "kafka", "acme.KafkaSink", "other.KafkaSink")
	require.EqualError(t, duplicate, "duplicate extension name acme.Sink name kafka on acme.KafkaSink and other.KafkaSink")
	assert.ErrorIs(t, duplicate, ErrDuplicateExtension)

	cause := errors.New("connection refused")
	instantiation := NewInstantiationError("acme.Sink", "kafka", cause)
	require.EqualError(t, instantiation, "extension=(kafka) contract=(acme.Sink): extension instantiation failed: connection refused")
	assert.ErrorIs(t, instantiation, ErrInstantiationFailed)
	assert.ErrorIs(t, instantiation, cause)

	panicErr := NewPanicError(errors.New("something went wrong"))
	require.EqualError(t, panicErr, "panic: something went wrong")
	assert.ErrorIs(t, NewInstantiationError("acme.Sink", "kafka", panicErr), ErrInstantiationFailed)
}

func TestFormattedErrors(t *testing.T) {
	require.EqualError(t, NewErrMultipleDefaultNames("acme.Sink", []string{"a", "b"}),
		"contract=(acme.Sink) names=[a, b] more than one default extension name")
	assert.ErrorIs(t, NewErrNotInterface("acme.Struct"), ErrNotInterface)
	assert.ErrorIs(t, NewErrNotExtensible("acme.Sink"), ErrNotExtensible)
	assert.ErrorIs(t, NewErrContractConflict("acme.Sink"), ErrContractConflict)
	assert.ErrorIs(t, NewErrUnresolvableIdentifier("acme.Missing"), ErrUnresolvableIdentifier)
	assert.ErrorIs(t, NewErrNotSubtype("acme.Other", "acme.Sink"), ErrNotSubtype)
	assert.ErrorIs(t, NewErrFactoryExists("acme.KafkaSink"), ErrFactoryExists)
	assert.ErrorIs(t, NewErrInvalidFactory("acme.KafkaSink", "nil constructor"), ErrInvalidFactory)
	assert.ErrorIs(t, NewErrInvalidSymbol("Extensions", 42), ErrInvalidSymbol)
	require.EqualError(t, NewErrInvalidContractName("acme Sink"), "contract=(acme Sink) invalid contract name")

	cause := errors.New("zip: not a valid zip file")
	bundleErr := NewErrInvalidBundle("/opt/plugin/bad.zip", cause)
	assert.ErrorIs(t, bundleErr, ErrInvalidBundle)
	assert.ErrorIs(t, bundleErr, cause)
}
