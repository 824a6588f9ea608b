package telemetry

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func newTraceProvider() {
	if !signalEnabled(otlpTracesEndpoint) {
		log.Debug().Msg("No OTLP trace endpoint configured. Traces will not be exported")
		return
	}

	var client otlptrace.Client
	switch protocol := exporterProtocol(otlpTracesProtocol); protocol {
	case otlpProtocolHTTP:
		client = otlptracehttp.NewClient()
	case otlpProtocolGrpc:
		client = otlptracegrpc.NewClient()
	default:
		log.Error().Err(fmt.Errorf("unsupported OTLP protocol %q", protocol)).Msg("Traces will not be exported")
		return
	}

	// the context handed to the exporter is only used while dialing the endpoint
	exp, err := otlptrace.New(context.Background(), client)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize OTLP trace exporter")
		return
	}

	otel.SetTracerProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(newResource()),
	))
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

func cleanupTraceProvider() error {
	type shutdown interface {
		oteltrace.TracerProvider
		Shutdown(ctx context.Context) error
	}
	if tp, ok := otel.GetTracerProvider().(shutdown); ok {
		return tp.Shutdown(context.Background())
	}
	return nil
}
