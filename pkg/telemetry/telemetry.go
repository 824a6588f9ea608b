// Package telemetry wires the process to OTLP trace and metric exporters. The
// exporters are configured entirely from the standard OpenTelemetry
// environment variables and stay inert when no endpoint is set, so importing
// packages can declare instruments unconditionally.
package telemetry

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/shoal-project/shoal/pkg/version"
)

// SetupFromEnvs installs the global tracer and meter providers. Failures are
// logged rather than returned: a process that cannot export telemetry still
// has to make assignment decisions.
func SetupFromEnvs() {
	newTraceProvider()
	newMeterProvider()

	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		log.Warn().Err(err).Msg("Telemetry export error")
	}))
}

// Cleanup flushes buffered spans and measurements and shuts the exporters
// down. Call it once, on process exit.
func Cleanup() error {
	tracingError := cleanupTraceProvider()
	meterError := cleanupMeterProvider()
	var err error
	if tracingError != nil || meterError != nil {
		err = errors.New("telemetry cleanup error")
		if tracingError != nil {
			err = errors.Wrap(err, "tracing cleanup error")
		}
		if meterError != nil {
			err = errors.Wrap(err, "meter cleanup error")
		}
	}
	return err
}

// newResource describes this process to the telemetry backend.
func newResource() *resource.Resource {
	res, err := resource.Merge(
		resource.Environment(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("shoal"),
			semconv.ServiceVersionKey.String(version.GITVERSION),
		),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create telemetry resource. Falling back to the default resource")
		res = resource.Default()
	}
	return res
}

// signalEnabled reports whether an exporter for a signal should be started: a
// signal-specific endpoint or the general endpoint must be configured, and
// telemetry must not be disabled outright.
func signalEnabled(signalEndpoint string) bool {
	if v, ok := os.LookupEnv(disableTelemetry); ok && v == "1" {
		return false
	}
	if _, ok := os.LookupEnv(otlpEndpoint); ok {
		return true
	}
	_, ok := os.LookupEnv(signalEndpoint)
	return ok
}

// exporterProtocol resolves the OTLP transport for a signal. The
// signal-specific variable overrides the general one.
func exporterProtocol(signalProtocol string) string {
	protocol := otlpProtocolHTTP
	if v := os.Getenv(otlpProtocol); v != "" {
		protocol = v
	}
	if v := os.Getenv(signalProtocol); v != "" {
		protocol = v
	}
	return protocol
}
