//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/primind-medication-reminder/internal/config"
	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/notifier"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/logging"
)

// initNotifier returns a nil notifier when no push gateway is configured;
// reminders are then planned but not registered.
func initNotifier(_ context.Context, cfg *config.Config) (domain.Notifier, func() error, error) {
	if cfg.Notifier.PushGatewayURL == "" {
		slog.Warn("PUSH_GATEWAY_URL not set, reminder registration disabled")

		return nil, nil, nil
	}

	n := notifier.NewPushGatewayClient(cfg.Notifier.PushGatewayURL, cfg.Notifier.MaxRetries)

	slog.Info("notifier initialized",
		slog.String("type", "push_gateway"),
		slog.String("url", cfg.Notifier.PushGatewayURL),
	)

	return n, nil, nil
}

func initObservability(ctx context.Context, level slog.Level) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "medication-reminder"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:   env,
		SamplingRate:  1.0,
		DefaultModule: module,
		LogLevel:      level,
	})
}
