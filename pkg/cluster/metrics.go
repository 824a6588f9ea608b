package cluster

import (
	"go.opentelemetry.io/otel"

	"github.com/shoal-project/shoal/pkg/telemetry"
)

var (
	Meter = otel.GetMeterProvider().Meter("cluster")

	mutationCount = telemetry.Must(telemetry.NewCounter(
		Meter,
		"cluster.registry.mutation.count",
		"Number of mutations applied to the cluster state registry.",
	))
)
