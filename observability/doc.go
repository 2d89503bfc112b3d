// Package observability provides OpenTelemetry tracing and metrics
// for responder.
//
// Both signals export over OTLP/HTTP and are disabled by default;
// enable them via the observability section of the service config.
package observability
