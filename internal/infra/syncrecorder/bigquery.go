//go:build gcloud

package syncrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt     time.Time `bigquery:"recorded_at"`
	SyncedAt       time.Time `bigquery:"synced_at"`
	RunID          string    `bigquery:"run_id"`
	UserID         string    `bigquery:"user_id"`
	Trigger        string    `bigquery:"trigger"`
	PlanDate       string    `bigquery:"plan_date"`
	Outcome        string    `bigquery:"outcome"`
	PlannedCount   int64     `bigquery:"planned_count"`
	ScheduledCount int64     `bigquery:"scheduled_count"`
	FailedCount    int64     `bigquery:"failed_count"`
	CancelledCount int64     `bigquery:"cancelled_count"`
	InvalidCount   int64     `bigquery:"invalid_count"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.SyncResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "sync result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, sync result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, sync result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	slog.InfoContext(ctx, "sync result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter(),
	}, nil
}

func (r *bigQueryRecorder) RecordSyncResult(ctx context.Context, record domain.SyncResultRecord) error {
	row := &bigQueryRecord{
		RecordedAt:     time.Now(),
		SyncedAt:       record.SyncedAt,
		RunID:          record.RunID,
		UserID:         record.UserID,
		Trigger:        record.Trigger,
		PlanDate:       record.PlanDate,
		Outcome:        record.Outcome,
		PlannedCount:   int64(record.PlannedCount),
		ScheduledCount: int64(record.ScheduledCount),
		FailedCount:    int64(record.FailedCount),
		CancelledCount: int64(record.CancelledCount),
		InvalidCount:   int64(record.InvalidCount),
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert sync result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("run_id", record.RunID),
		)
	}
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
