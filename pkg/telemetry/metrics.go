package telemetry

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

var meterProvider *sdkmetric.MeterProvider

func newMeterProvider() {
	if !signalEnabled(otlpMetricsEndpoint) {
		log.Debug().Msg("No OTLP metric endpoint configured. Metrics will not be exported")
		return
	}

	// the context handed to the exporter is only used while dialing the endpoint
	ctx := context.Background()
	var exp sdkmetric.Exporter
	var err error
	switch protocol := exporterProtocol(otlpMetricsProtocol); protocol {
	case otlpProtocolHTTP:
		exp, err = otlpmetrichttp.New(ctx)
	case otlpProtocolGrpc:
		exp, err = otlpmetricgrpc.New(ctx)
	default:
		err = fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize OTLP metric exporter")
		return
	}

	meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(newResource()),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
	)
	otel.SetMeterProvider(meterProvider)
}

func cleanupMeterProvider() error {
	if meterProvider == nil {
		return nil
	}
	ctx := context.Background()
	if err := meterProvider.ForceFlush(ctx); err != nil {
		return meterProvider.Shutdown(ctx)
	}
	return nil
}
