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

// Package metric defines the instruments recorded by the extension registry.
package metric

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	discoveryCounterName            = "spi.discovery.count"
	discoveryDurationHistogramName  = "spi.discovery.duration"
	instantiationCounterName        = "spi.instantiation.count"
	instantiationFailureCounterName = "spi.instantiation.failure.count"
	ledgerErrorCounterName          = "spi.ledger.error.count"

	// ContractKey is the attribute naming the contract a measurement belongs to
	ContractKey = attribute.Key("contract")
)

// RegistryMetric defines the extension registry metrics
type RegistryMetric struct {
	discoveryCount            metric.Int64Counter
	discoveryDuration         metric.Float64Histogram
	instantiationCount        metric.Int64Counter
	instantiationFailureCount metric.Int64Counter
	ledgerErrorCount          metric.Int64Counter
}

// NewRegistryMetric creates an instance of RegistryMetric
func NewRegistryMetric(meter metric.Meter) (*RegistryMetric, error) {
	registryMetric := new(RegistryMetric)
	var err error

	if registryMetric.discoveryCount, err = meter.Int64Counter(
		discoveryCounterName,
		metric.WithDescription("The total number of completed discoveries"),
	); err != nil {
		return nil, fmt.Errorf("failed to create discoveryCount instrument, %v", err)
	}

	if registryMetric.discoveryDuration, err = meter.Float64Histogram(
		discoveryDurationHistogramName,
		metric.WithDescription("The latency of a discovery in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, fmt.Errorf("failed to create discoveryDuration instrument, %v", err)
	}

	if registryMetric.instantiationCount, err = meter.Int64Counter(
		instantiationCounterName,
		metric.WithDescription("The total number of extension instances created"),
	); err != nil {
		return nil, fmt.Errorf("failed to create instantiationCount instrument, %v", err)
	}

	if registryMetric.instantiationFailureCount, err = meter.Int64Counter(
		instantiationFailureCounterName,
		metric.WithDescription("The total number of failed extension constructions"),
	); err != nil {
		return nil, fmt.Errorf("failed to create instantiationFailureCount instrument, %v", err)
	}

	if registryMetric.ledgerErrorCount, err = meter.Int64Counter(
		ledgerErrorCounterName,
		metric.WithDescription("The total number of descriptor lines that failed to load"),
	); err != nil {
		return nil, fmt.Errorf("failed to create ledgerErrorCount instrument, %v", err)
	}

	return registryMetric, nil
}

// RecordDiscovery records a completed discovery and the ledger entries it produced
func (x *RegistryMetric) RecordDiscovery(ctx context.Context, contract string, elapsed time.Duration, ledgerErrors int) {
	attrs := metric.WithAttributes(ContractKey.String(contract))
	x.discoveryCount.Add(ctx, 1, attrs)
	x.discoveryDuration.Record(ctx, float64(elapsed)/float64(time.Millisecond), attrs)
	if ledgerErrors > 0 {
		x.ledgerErrorCount.Add(ctx, int64(ledgerErrors), attrs)
	}
}

// RecordInstantiation records an instance construction attempt
func (x *RegistryMetric) RecordInstantiation(ctx context.Context, contract string, err error) {
	attrs := metric.WithAttributes(ContractKey.String(contract))
	if err != nil {
		x.instantiationFailureCount.Add(ctx, 1, attrs)
		return
	}
	x.instantiationCount.Add(ctx, 1, attrs)
}
