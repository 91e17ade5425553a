package domain

import (
	"context"
	"time"
)

type SyncResultRecord struct {
	RunID          string
	UserID         string
	Trigger        string
	PlanDate       string
	SyncedAt       time.Time
	Outcome        string
	PlannedCount   int
	ScheduledCount int
	FailedCount    int
	CancelledCount int
	InvalidCount   int
}

type SyncResultRecorder interface {
	RecordSyncResult(ctx context.Context, record SyncResultRecord) error
	Close() error
}
