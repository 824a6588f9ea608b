package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DurationMsBuckets are histogram bucket boundaries in seconds, tuned for
// operations that complete in the millisecond range.
var DurationMsBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Must returns the instrument or panics if its creation failed. Meant for
// package level instrument declarations where errors are programming mistakes.
func Must[T any](instrument T, err error) T {
	if err != nil {
		panic(err)
	}
	return instrument
}

// Counter is a synchronous instrument which supports non-negative increments.
// Example uses for Counter:
// - count the number of assignment decisions made
// - count the number of datafeeds started
// - count the number of registry mutations applied
type Counter struct {
	counter metric.Int64Counter
}

func NewCounter(meter metric.Meter, name string, description string) (*Counter, error) {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		return nil, err
	}
	return &Counter{counter: counter}, nil
}

func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func (c *Counter) Add(ctx context.Context, num int64, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, num, metric.WithAttributes(attrs...))
}

// Timer records a duration. Calling it starts the clock, calling the returned
// function records the elapsed time in seconds and returns it.
func Timer(
	ctx context.Context,
	durationRecorder metric.Float64Histogram,
	attrs ...attribute.KeyValue,
) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		dur := time.Since(start)
		durationRecorder.Record(ctx, dur.Seconds(), metric.WithAttributes(attrs...))
		return dur
	}
}
