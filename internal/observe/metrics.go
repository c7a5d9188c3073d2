// Package observe provides observability primitives for the subtitle editing
// engine: OpenTelemetry metrics with a Prometheus exporter bridge.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A package-level
// default [Metrics] instance ([DefaultMetrics]) is provided for convenience;
// tests should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all subcue metrics.
const meterName = "github.com/subcue/subcue"

// Metrics holds all OpenTelemetry metric instruments for the editing engine.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// EditOperations counts mutation operations by kind and outcome. Use with
	// attributes:
	//   attribute.String("op", ...), attribute.String("status", "applied"|"noop")
	EditOperations metric.Int64Counter

	// RepairAdjustments counts individual corrections made by the invariant
	// enforcer (duplicate ids fixed, overlaps closed, words clamped).
	RepairAdjustments metric.Int64Counter

	// SearchDuration tracks how long building a search index takes.
	SearchDuration metric.Float64Histogram

	// HighlightDuration tracks the per-tick cost of resolving highlighted
	// words from a playhead position.
	HighlightDuration metric.Float64Histogram

	// SearchMatches counts completed searches by whether they produced hits.
	// Use with attribute.String("result", "hits"|"empty").
	SearchMatches metric.Int64Counter
}

// latencyBuckets defines histogram bucket boundaries (in seconds) for
// interactive-editor latencies: anything above a few milliseconds per
// playhead tick is already visible as UI jank.
var latencyBuckets = []float64{
	0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.EditOperations, err = m.Int64Counter("subcue.edit.operations",
		metric.WithDescription("Total mutation operations by kind and outcome."),
	); err != nil {
		return nil, err
	}
	if met.RepairAdjustments, err = m.Int64Counter("subcue.repair.adjustments",
		metric.WithDescription("Total invariant-enforcer corrections applied."),
	); err != nil {
		return nil, err
	}
	if met.SearchDuration, err = m.Float64Histogram("subcue.search.duration",
		metric.WithDescription("Latency of building a search index."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.HighlightDuration, err = m.Float64Histogram("subcue.highlight.duration",
		metric.WithDescription("Latency of resolving highlighted words for a playhead tick."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.SearchMatches, err = m.Int64Counter("subcue.search.completed",
		metric.WithDescription("Completed searches by result."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordEditOperation records one mutation operation with the standard
// attribute set. applied=false marks a silent no-op.
func (m *Metrics) RecordEditOperation(ctx context.Context, op string, applied bool) {
	status := "applied"
	if !applied {
		status = "noop"
	}
	m.EditOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("op", op),
			attribute.String("status", status),
		),
	)
}

// RecordSearch records a completed search: its indexing latency in seconds
// and whether it produced any hits.
func (m *Metrics) RecordSearch(ctx context.Context, seconds float64, hits int) {
	m.SearchDuration.Record(ctx, seconds)
	result := "hits"
	if hits == 0 {
		result = "empty"
	}
	m.SearchMatches.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
