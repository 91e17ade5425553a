package repository

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/testutil"
)

func TestSaveAndGetScheduleStateSuccess(t *testing.T) {
	ctx := context.Background()
	client := testutil.RedisClient(t)

	repo := NewScheduleStateRepository(client)

	scheduledAt := time.Date(2024, time.January, 3, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		state *domain.ScheduleState
	}{
		{
			name: "state with notifications",
			state: &domain.ScheduleState{
				UserID:          "user-1",
				Fingerprint:     0xdeadbeefcafef00d,
				PlanDate:        "2024-01-03",
				NotificationIDs: []string{"n-1", "n-2"},
				ScheduledAt:     scheduledAt,
			},
		},
		{
			name: "state without notifications",
			state: &domain.ScheduleState{
				UserID:          "user-2",
				Fingerprint:     7,
				PlanDate:        "2024-01-03",
				NotificationIDs: []string{},
				ScheduledAt:     scheduledAt,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.SaveScheduleState(ctx, tt.state); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			ttl, err := client.TTL(ctx, "reminder:schedule:"+tt.state.UserID).Result()
			if err != nil {
				t.Fatalf("failed to read ttl: %v", err)
			}
			if ttl != -1 {
				t.Errorf("expected no expiry, got %v", ttl)
			}

			got, err := repo.GetScheduleState(ctx, tt.state.UserID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Fingerprint != tt.state.Fingerprint {
				t.Errorf("expected Fingerprint %d, got %d", tt.state.Fingerprint, got.Fingerprint)
			}
			if got.PlanDate != tt.state.PlanDate {
				t.Errorf("expected PlanDate %s, got %s", tt.state.PlanDate, got.PlanDate)
			}
			if !slices.Equal(got.NotificationIDs, tt.state.NotificationIDs) {
				t.Errorf("expected NotificationIDs %v, got %v", tt.state.NotificationIDs, got.NotificationIDs)
			}
			if !got.ScheduledAt.Equal(tt.state.ScheduledAt) {
				t.Errorf("expected ScheduledAt %v, got %v", tt.state.ScheduledAt, got.ScheduledAt)
			}
		})
	}
}

func TestSaveScheduleStateError(t *testing.T) {
	ctx := context.Background()
	client := testutil.RedisClient(t)

	repo := NewScheduleStateRepository(client)

	tests := []struct {
		name  string
		state *domain.ScheduleState
	}{
		{name: "nil state", state: nil},
		{name: "missing user id", state: &domain.ScheduleState{PlanDate: "2024-01-03"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.SaveScheduleState(ctx, tt.state)
			if !errors.Is(err, ErrInvalidScheduleState) {
				t.Errorf("expected error %v, got %v", ErrInvalidScheduleState, err)
			}
		})
	}
}

func TestGetScheduleStateError(t *testing.T) {
	ctx := context.Background()
	client := testutil.RedisClient(t)

	repo := NewScheduleStateRepository(client)

	if err := client.Set(ctx, "reminder:schedule:broken", "not-json", 0).Err(); err != nil {
		t.Fatalf("failed to set up test data: %v", err)
	}

	tests := []struct {
		name        string
		userID      string
		expectedErr error
	}{
		{name: "missing state", userID: "nobody", expectedErr: domain.ErrScheduleStateNotFound},
		{name: "corrupt record", userID: "broken", expectedErr: ErrInvalidScheduleRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.GetScheduleState(ctx, tt.userID)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestDeleteScheduleStateSuccess(t *testing.T) {
	ctx := context.Background()
	client := testutil.RedisClient(t)

	repo := NewScheduleStateRepository(client)

	state := &domain.ScheduleState{UserID: "user-1", PlanDate: "2024-01-03", NotificationIDs: []string{"n-1"}}
	if err := repo.SaveScheduleState(ctx, state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.DeleteScheduleState(ctx, "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.GetScheduleState(ctx, "user-1"); !errors.Is(err, domain.ErrScheduleStateNotFound) {
		t.Errorf("expected error %v, got %v", domain.ErrScheduleStateNotFound, err)
	}

	// Deleting a missing state is not an error.
	if err := repo.DeleteScheduleState(ctx, "user-1"); err != nil {
		t.Errorf("unexpected error deleting missing state: %v", err)
	}
}
