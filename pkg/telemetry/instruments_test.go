//go:build unit || !integration

package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader sdkmetric.Reader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func TestCounter(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter(t.Name())

	counter, err := NewCounter(meter, "decisions", "number of assignment decisions made")
	require.NoError(t, err)

	ctx := context.Background()
	counter.Inc(ctx, attribute.String("outcome", "assigned"))
	counter.Add(ctx, 2, attribute.String("outcome", "assigned"))

	rm := collect(t, reader)
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	require.EqualValues(t, 3, sum.DataPoints[0].Value)
}

func TestTimer(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter(t.Name())

	histogram, err := meter.Float64Histogram("duration", metric.WithUnit("s"))
	require.NoError(t, err)

	stop := Timer(context.Background(), histogram)
	dur := stop()
	require.GreaterOrEqual(t, dur, time.Duration(0))

	rm := collect(t, reader)
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	hist, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	require.EqualValues(t, 1, hist.DataPoints[0].Count)
}

func TestMust(t *testing.T) {
	require.Equal(t, 42, Must(42, nil))
	require.Panics(t, func() {
		Must(0, errors.New("boom"))
	})
}
