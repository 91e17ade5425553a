package domain

import "context"

//go:generate mockgen -source=schedule_state_repository.go -destination=schedule_state_repository_mock.go -package=domain

type ScheduleStateRepository interface {
	GetScheduleState(ctx context.Context, userID string) (*ScheduleState, error)
	SaveScheduleState(ctx context.Context, state *ScheduleState) error
	DeleteScheduleState(ctx context.Context, userID string) error
}
