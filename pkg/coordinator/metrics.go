package coordinator

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/shoal-project/shoal/pkg/telemetry"
)

var (
	Meter = otel.GetMeterProvider().Meter("coordinator")
)

// Metrics for monitoring the evaluation loop
var (
	evaluationCount = telemetry.Must(Meter.Int64Counter(
		"coordinator.evaluation.count",
		metric.WithDescription("Number of pending-datafeed evaluations, by outcome"),
		metric.WithUnit("1"),
	))

	evaluationRoundDuration = telemetry.Must(Meter.Float64Histogram(
		"coordinator.evaluation.round.duration",
		metric.WithDescription("Time taken to evaluate all pending datafeeds in one round"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(telemetry.DurationMsBuckets...),
	))
)

const (
	AttrOutcomeKey            = "outcome"
	AttrOutcomeDispatched     = "dispatched"
	AttrOutcomeUnassigned     = "unassigned"
	AttrOutcomeDispatchFailed = "dispatch_failed"
	AttrOutcomeDropped        = "dropped"
)

func outcomeAttribute(outcome string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String(AttrOutcomeKey, outcome))
}
