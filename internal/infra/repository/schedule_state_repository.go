package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

// Registered notifications repeat weekly until cancelled, so the state is
// kept without expiry.
const scheduleStateKeyPrefix = "reminder:schedule:"

type scheduleStateRecord struct {
	UserID          string    `json:"user_id"`
	Fingerprint     uint64    `json:"fingerprint"`
	PlanDate        string    `json:"plan_date"`
	NotificationIDs []string  `json:"notification_ids"`
	ScheduledAt     time.Time `json:"scheduled_at"`
}

type scheduleStateRepository struct {
	client *redis.Client
}

func NewScheduleStateRepository(client *redis.Client) domain.ScheduleStateRepository {
	return &scheduleStateRepository{
		client: client,
	}
}

func scheduleStateKey(userID string) string {
	return scheduleStateKeyPrefix + userID
}

func (r *scheduleStateRepository) GetScheduleState(ctx context.Context, userID string) (*domain.ScheduleState, error) {
	data, err := r.client.Get(ctx, scheduleStateKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrScheduleStateNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	var record scheduleStateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidScheduleRecord
	}

	ids := record.NotificationIDs
	if ids == nil {
		ids = []string{}
	}

	return &domain.ScheduleState{
		UserID:          record.UserID,
		Fingerprint:     record.Fingerprint,
		PlanDate:        record.PlanDate,
		NotificationIDs: ids,
		ScheduledAt:     record.ScheduledAt,
	}, nil
}

func (r *scheduleStateRepository) SaveScheduleState(ctx context.Context, state *domain.ScheduleState) error {
	if state == nil || state.UserID == "" {
		return ErrInvalidScheduleState
	}

	record := scheduleStateRecord{
		UserID:          state.UserID,
		Fingerprint:     state.Fingerprint,
		PlanDate:        state.PlanDate,
		NotificationIDs: state.NotificationIDs,
		ScheduledAt:     state.ScheduledAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidScheduleState
	}

	if err := r.client.Set(ctx, scheduleStateKey(state.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}
	return nil
}

func (r *scheduleStateRepository) DeleteScheduleState(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, scheduleStateKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}
	return nil
}
