//go:build !gcloud

package syncrecorder

import (
	"context"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

const measurement = "reminder_sync"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.SyncResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "sync result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, sync result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)

	slog.InfoContext(ctx, "sync result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket),
	}, nil
}

func (r *influxDBRecorder) RecordSyncResult(ctx context.Context, record domain.SyncResultRecord) error {
	if err := r.writeAPI.WritePoint(ctx, toPoint(record)); err != nil {
		slog.WarnContext(ctx, "failed to write sync result to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID),
			slog.String("run_id", record.RunID),
		)
	}
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}

// User IDs stay out of the tag set to keep series cardinality bounded.
func toPoint(record domain.SyncResultRecord) *write.Point {
	return influxdb2.NewPoint(
		measurement,
		map[string]string{
			"trigger": record.Trigger,
			"outcome": record.Outcome,
		},
		map[string]any{
			"run_id":          record.RunID,
			"user_id":         record.UserID,
			"plan_date":       record.PlanDate,
			"planned_count":   record.PlannedCount,
			"scheduled_count": record.ScheduledCount,
			"failed_count":    record.FailedCount,
			"cancelled_count": record.CancelledCount,
			"invalid_count":   record.InvalidCount,
		},
		record.SyncedAt,
	)
}
