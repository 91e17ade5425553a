package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/tracing"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/notify"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/reminder"
)

// Trigger says what started a sync pass.
type Trigger string

const (
	TriggerManual Trigger = "manual"
	TriggerChange Trigger = "change"
	TriggerDaily  Trigger = "daily"
	TriggerDelete Trigger = "delete"
)

// ErrRemindersPending means some of the user's notifications are still
// registered with the notifier.
var ErrRemindersPending = errors.New("reminders could not be cancelled")

type Outcome string

const (
	OutcomeScheduled Outcome = "scheduled"
	OutcomePartial   Outcome = "partial"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeEmpty     Outcome = "empty"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

type Scheduler interface {
	Enabled() bool
	Schedule(ctx context.Context, userID string, instances []domain.ReminderInstance, stamp notify.Stamp) (*notify.Result, error)
	Cancel(ctx context.Context, userID string) (*notify.Result, error)
}

type Result struct {
	RunID       string                    `json:"run_id"`
	UserID      string                    `json:"user_id"`
	PlanDate    string                    `json:"plan_date"`
	Outcome     Outcome                   `json:"outcome"`
	Fingerprint uint64                    `json:"fingerprint"`
	Instances   []domain.ReminderInstance `json:"instances"`
	Invalid     []domain.InvalidMedicine  `json:"invalid"`
	Schedule    *notify.Result            `json:"schedule,omitempty"`
}

type Service struct {
	medicines domain.MedicineRepository
	stateRepo domain.ScheduleStateRepository
	scheduler Scheduler
	recorder  domain.SyncResultRecorder
	metrics   *metrics.ReminderMetrics
	locks     *keyedMutex
	loc       *time.Location
}

func NewService(
	medicines domain.MedicineRepository,
	stateRepo domain.ScheduleStateRepository,
	scheduler Scheduler,
	recorder domain.SyncResultRecorder,
	m *metrics.ReminderMetrics,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		medicines: medicines,
		stateRepo: stateRepo,
		scheduler: scheduler,
		recorder:  recorder,
		metrics:   m,
		locks:     newKeyedMutex(),
		loc:       loc,
	}
}

// Now is the current time in the service's time zone.
func (s *Service) Now() time.Time {
	return time.Now().In(s.loc)
}

// Location is the zone used when a caller does not supply one.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Preview plans the user's remaining reminders for now's date without
// touching the notifier.
func (s *Service) Preview(ctx context.Context, userID string, now time.Time) (reminder.Plan, error) {
	meds, err := s.medicines.GetMedicinesForUser(ctx, userID)
	if err != nil {
		return reminder.Plan{}, err
	}
	return s.plan(ctx, userID, meds, now), nil
}

// Sync plans today's reminders for the user and registers them unless the
// stored state already matches the plan. force re-registers regardless.
func (s *Service) Sync(ctx context.Context, userID string, now time.Time, force bool) (*Result, error) {
	return s.run(ctx, userID, now, force, TriggerManual)
}

// SyncUser re-plans after a medicine change.
func (s *Service) SyncUser(ctx context.Context, userID string) error {
	_, err := s.run(ctx, userID, s.Now(), false, TriggerChange)
	return err
}

// CancelUser cancels every reminder of the user and then calls remove while
// the user's lock is still held, so no concurrent sync can register new
// reminders in between. remove is skipped unless cancellation fully succeeded.
func (s *Service) CancelUser(ctx context.Context, userID string, remove func(context.Context) error) (*notify.Result, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	start := time.Now()
	now := s.Now()

	ctx, span := tracing.StartSyncSpan(ctx, userID, string(TriggerDelete), true)
	defer span.End()

	result := &Result{
		RunID:     uuid.NewString(),
		UserID:    userID,
		PlanDate:  domain.DateOf(now).String(),
		Outcome:   OutcomeCancelled,
		Instances: []domain.ReminderInstance{},
		Invalid:   []domain.InvalidMedicine{},
	}

	cancelled, err := s.scheduler.Cancel(ctx, userID)
	result.Schedule = cancelled
	switch {
	case err != nil:
		err = fmt.Errorf("%w: %w", ErrRemindersPending, err)
	case cancelled != nil && cancelled.Skipped:
		result.Outcome = OutcomeSkipped
	}

	if err == nil && remove != nil {
		err = remove(ctx)
	}
	if err != nil {
		result.Outcome = OutcomeFailed
	}

	s.metrics.RecordSync(ctx, string(TriggerDelete), string(result.Outcome), time.Since(start))
	tracing.RecordSyncResult(span, string(result.Outcome), 0, err)
	s.record(ctx, result, TriggerDelete, now)

	if err != nil {
		slog.WarnContext(ctx, "reminder cancellation failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return cancelled, err
	}
	return cancelled, nil
}

func (s *Service) run(ctx context.Context, userID string, now time.Time, force bool, trigger Trigger) (*Result, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	start := time.Now()

	ctx, span := tracing.StartSyncSpan(ctx, userID, string(trigger), force)
	defer span.End()

	result, err := s.sync(ctx, userID, now, force)
	if err != nil {
		result.Outcome = OutcomeFailed
	}

	s.metrics.RecordSync(ctx, string(trigger), string(result.Outcome), time.Since(start))
	tracing.RecordSyncResult(span, string(result.Outcome), len(result.Instances), err)
	s.record(ctx, result, trigger, now)

	if err != nil {
		slog.ErrorContext(ctx, "reminder sync failed",
			slog.String("user_id", userID),
			slog.String("trigger", string(trigger)),
			slog.String("error", err.Error()),
		)
		return result, err
	}

	slog.InfoContext(ctx, "reminder sync completed",
		slog.String("user_id", userID),
		slog.String("trigger", string(trigger)),
		slog.String("outcome", string(result.Outcome)),
		slog.String("plan_date", result.PlanDate),
		slog.Int("planned", len(result.Instances)),
		slog.Int("invalid", len(result.Invalid)),
	)
	return result, nil
}

// sync always returns a non-nil result.
func (s *Service) sync(ctx context.Context, userID string, now time.Time, force bool) (*Result, error) {
	result := &Result{
		RunID:     uuid.NewString(),
		UserID:    userID,
		PlanDate:  domain.DateOf(now).String(),
		Instances: []domain.ReminderInstance{},
		Invalid:   []domain.InvalidMedicine{},
	}

	meds, err := s.medicines.GetMedicinesForUser(ctx, userID)
	if err != nil {
		return result, fmt.Errorf("failed to load medicines: %w", err)
	}

	plan := s.plan(ctx, userID, meds, now)
	result.Instances = plan.Instances
	result.Invalid = plan.Invalid
	result.Fingerprint = Fingerprint(plan)

	if !s.scheduler.Enabled() {
		result.Outcome = OutcomeSkipped
		return result, nil
	}

	state, err := s.stateRepo.GetScheduleState(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrScheduleStateNotFound) {
		return result, fmt.Errorf("failed to load schedule state: %w", err)
	}

	if len(plan.Instances) == 0 {
		if !state.HasNotifications() {
			result.Outcome = OutcomeEmpty
			return result, nil
		}
		cancelled, err := s.scheduler.Cancel(ctx, userID)
		result.Schedule = cancelled
		if err != nil {
			return result, err
		}
		result.Outcome = OutcomeCancelled
		return result, nil
	}

	if !force && state != nil && state.Fingerprint != 0 &&
		state.Fingerprint == result.Fingerprint && state.PlanDate == result.PlanDate {
		result.Outcome = OutcomeUnchanged
		return result, nil
	}

	scheduled, err := s.scheduler.Schedule(ctx, userID, plan.Instances, notify.Stamp{
		Fingerprint: result.Fingerprint,
		PlanDate:    result.PlanDate,
	})
	result.Schedule = scheduled
	if err != nil {
		return result, err
	}

	switch {
	case scheduled.Skipped:
		result.Outcome = OutcomeSkipped
	case scheduled.Complete():
		result.Outcome = OutcomeScheduled
	default:
		result.Outcome = OutcomePartial
	}
	return result, nil
}

func (s *Service) plan(ctx context.Context, userID string, meds []domain.Medicine, now time.Time) reminder.Plan {
	ctx, span := tracing.StartPlanSpan(ctx, userID, len(meds))
	defer span.End()

	plan := reminder.PlanForToday(meds, now)

	for _, inv := range plan.Invalid {
		slog.WarnContext(ctx, "medicine excluded from planning",
			slog.String("user_id", userID),
			slog.String("medicine_id", inv.MedicineID),
			slog.String("reason", inv.Reason),
		)
	}
	s.metrics.RecordInvalidMedicines(ctx, len(plan.Invalid))
	s.metrics.RecordPlanned(ctx, len(plan.Instances))

	tracing.RecordPlanResult(span, len(plan.Instances), len(plan.Invalid))
	return plan
}

func (s *Service) record(ctx context.Context, result *Result, trigger Trigger, now time.Time) {
	if s.recorder == nil {
		return
	}

	record := domain.SyncResultRecord{
		RunID:        result.RunID,
		UserID:       result.UserID,
		Trigger:      string(trigger),
		PlanDate:     result.PlanDate,
		SyncedAt:     now,
		Outcome:      string(result.Outcome),
		PlannedCount: len(result.Instances),
		InvalidCount: len(result.Invalid),
	}
	if result.Schedule != nil {
		record.ScheduledCount = result.Schedule.Scheduled
		record.FailedCount = result.Schedule.Failed
		record.CancelledCount = result.Schedule.Cancelled
	}

	if err := s.recorder.RecordSyncResult(ctx, record); err != nil {
		slog.WarnContext(ctx, "failed to record sync result",
			slog.String("user_id", result.UserID),
			slog.String("run_id", result.RunID),
			slog.String("error", err.Error()),
		)
	}
}
