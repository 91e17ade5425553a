//go:build !gcloud

package observability

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
)

// newExporters uses OTLP over HTTP when an endpoint is configured and keeps
// telemetry in-process otherwise.
func newExporters(ctx context.Context, _ Config) (exporters, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return exporters{}, nil
	}

	spanExp, err := otlptracehttp.New(ctx)
	if err != nil {
		return exporters{}, err
	}

	metricExp, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return exporters{}, err
	}

	return exporters{span: spanExp, metric: metricExp}, nil
}
