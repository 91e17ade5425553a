package syncrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.SyncResultRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordSyncResult(_ context.Context, _ domain.SyncResultRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
