package selector

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/shoal-project/shoal/pkg/telemetry"
)

var (
	Meter = otel.GetMeterProvider().Meter("selector")
)

// Metrics for monitoring assignment decisions
var (
	decisionCount = telemetry.Must(Meter.Int64Counter(
		"selector.decision.count",
		metric.WithDescription("Number of assignment decisions evaluated"),
		metric.WithUnit("1"),
	))

	decisionDuration = telemetry.Must(Meter.Float64Histogram(
		"selector.decision.duration",
		metric.WithDescription("Time taken to evaluate a single assignment decision"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(telemetry.DurationMsBuckets...),
	))
)

const (
	AttrOutcomeKey        = "outcome"
	AttrOutcomeAssigned   = "assigned"
	AttrOutcomeUnassigned = "unassigned"
)

func outcomeAttribute(assigned bool) metric.MeasurementOption {
	outcome := AttrOutcomeUnassigned
	if assigned {
		outcome = AttrOutcomeAssigned
	}
	return metric.WithAttributes(attribute.String(AttrOutcomeKey, outcome))
}
