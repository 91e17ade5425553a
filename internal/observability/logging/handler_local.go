//go:build !gcloud

package logging

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Local builds log plain trace ids only.
func cloudTraceAttrs(trace.SpanContext, string) []slog.Attr {
	return nil
}
