package telemetry

// Environment variables understood by the OTLP exporters, as defined by the
// OpenTelemetry specification. Signal-specific variables take precedence over
// the general ones.
const (
	otlpEndpoint        = "OTEL_EXPORTER_OTLP_ENDPOINT"
	otlpProtocol        = "OTEL_EXPORTER_OTLP_PROTOCOL"
	otlpTracesEndpoint  = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	otlpTracesProtocol  = "OTEL_EXPORTER_OTLP_TRACES_PROTOCOL"
	otlpMetricsEndpoint = "OTEL_EXPORTER_OTLP_METRICS_ENDPOINT"
	otlpMetricsProtocol = "OTEL_EXPORTER_OTLP_METRICS_PROTOCOL"

	otlpProtocolHTTP = "http/protobuf"
	otlpProtocolGrpc = "grpc"

	// disableTelemetry turns off all exporters when set to "1", regardless of
	// any endpoint configuration.
	disableTelemetry = "SHOAL_TELEMETRY_DISABLED"
)
