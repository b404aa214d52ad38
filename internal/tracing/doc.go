// Package tracing is a thin wrapper around OpenTelemetry used by the uuidb64
// tool. Spans are exported as JSON to stdout or a file; when Init is never
// called, the global no-op provider makes every span free.
package tracing
