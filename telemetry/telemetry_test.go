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

package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestTelemetry(t *testing.T) {
	t.Run("With defaults", func(t *testing.T) {
		tel := New()
		assert.Equal(t, otel.GetMeterProvider(), tel.MeterProvider())
		assert.NotNil(t, tel.Meter())
	})
	t.Run("With meter provider", func(t *testing.T) {
		provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
		tel := New(WithMeterProvider(provider))
		assert.Equal(t, provider, tel.MeterProvider())
		assert.NotNil(t, tel.Meter())
	})
	t.Run("With nil meter provider", func(t *testing.T) {
		tel := New(WithMeterProvider(nil))
		assert.Equal(t, otel.GetMeterProvider(), tel.MeterProvider())
	})
	t.Run("With noop meter provider", func(t *testing.T) {
		provider := noop.NewMeterProvider()
		tel := New(WithMeterProvider(provider))
		assert.Equal(t, provider, tel.MeterProvider())
	})
}
