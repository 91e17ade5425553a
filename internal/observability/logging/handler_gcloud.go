//go:build gcloud

package logging

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// cloudTraceAttrs links log entries to Cloud Trace.
func cloudTraceAttrs(sc trace.SpanContext, projectID string) []slog.Attr {
	if projectID == "" {
		return nil
	}
	return []slog.Attr{
		slog.String("logging.googleapis.com/trace", fmt.Sprintf("projects/%s/traces/%s", projectID, sc.TraceID().String())),
		slog.String("logging.googleapis.com/spanId", sc.SpanID().String()),
		slog.Bool("logging.googleapis.com/trace_sampled", sc.IsSampled()),
	}
}
