package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/tracing"
)

// Stamp identifies the plan a schedule pass was made for.
type Stamp struct {
	Fingerprint uint64
	PlanDate    string
}

type Result struct {
	NotificationIDs []string `json:"notification_ids"`
	Scheduled       int      `json:"scheduled"`
	Failed          int      `json:"failed"`
	Cancelled       int      `json:"cancelled"`
	CancelFailed    int      `json:"cancel_failed"`
	Skipped         bool     `json:"skipped"`
}

// Complete reports whether every planned notification was registered and
// every previous one removed.
func (r *Result) Complete() bool {
	return r.Failed == 0 && r.CancelFailed == 0
}

type Scheduler struct {
	notifier  domain.Notifier
	stateRepo domain.ScheduleStateRepository
	metrics   *metrics.ReminderMetrics
	now       func() time.Time
}

// NewScheduler accepts a nil notifier; scheduling is then skipped with a
// warning.
func NewScheduler(notifier domain.Notifier, stateRepo domain.ScheduleStateRepository, m *metrics.ReminderMetrics) *Scheduler {
	return &Scheduler{
		notifier:  notifier,
		stateRepo: stateRepo,
		metrics:   m,
		now:       time.Now,
	}
}

func (s *Scheduler) Enabled() bool {
	return s.notifier != nil
}

// Schedule replaces whatever was registered for the user with one repeating
// notification per instance.
//
// Previous notifications that could not be cancelled stay in the stored
// state and are retried on the next pass. An incomplete pass is stored with
// a zero fingerprint so change detection does not treat it as current.
func (s *Scheduler) Schedule(ctx context.Context, userID string, instances []domain.ReminderInstance, stamp Stamp) (*Result, error) {
	if s.notifier == nil {
		slog.WarnContext(ctx, "notifier not configured, skipping reminder scheduling",
			slog.String("user_id", userID),
			slog.Int("instance_count", len(instances)),
		)
		return &Result{Skipped: true, NotificationIDs: []string{}}, nil
	}

	ctx, span := tracing.StartScheduleSpan(ctx, userID, len(instances))
	defer span.End()

	result := &Result{NotificationIDs: []string{}}

	prev, err := s.loadState(ctx, userID)
	if err != nil {
		tracing.RecordScheduleResult(span, 0, 0, 0, err)
		return nil, err
	}

	var carried []string
	if prev.HasNotifications() {
		carried = s.cancel(ctx, userID, prev.NotificationIDs, result)
	}

	for _, inst := range instances {
		trigger := domain.TriggerFor(userID, inst)

		id, err := s.notifier.ScheduleRecurring(ctx, trigger)
		if err != nil {
			result.Failed++
			s.metrics.RecordNotificationScheduled(ctx, string(inst.Slot), "failed")
			slog.WarnContext(ctx, "failed to schedule reminder",
				slog.String("user_id", userID),
				slog.String("medicine_id", inst.MedicineID),
				slog.String("slot", string(inst.Slot)),
				slog.Time("fire_time", inst.FireTime),
				slog.String("error", err.Error()),
			)
			continue
		}

		result.Scheduled++
		result.NotificationIDs = append(result.NotificationIDs, id)
		s.metrics.RecordNotificationScheduled(ctx, string(inst.Slot), "success")

		slog.DebugContext(ctx, "reminder scheduled",
			slog.String("user_id", userID),
			slog.String("medicine_id", inst.MedicineID),
			slog.String("slot", string(inst.Slot)),
			slog.String("notification_id", id),
		)
	}

	fingerprint := stamp.Fingerprint
	if !result.Complete() {
		fingerprint = 0
	}

	state := &domain.ScheduleState{
		UserID:          userID,
		Fingerprint:     fingerprint,
		PlanDate:        stamp.PlanDate,
		NotificationIDs: append(carried, result.NotificationIDs...),
		ScheduledAt:     s.now(),
	}
	if err := s.stateRepo.SaveScheduleState(ctx, state); err != nil {
		slog.ErrorContext(ctx, "failed to save schedule state, registered notifications are untracked",
			slog.String("user_id", userID),
			slog.Any("notification_ids", result.NotificationIDs),
			slog.String("error", err.Error()),
		)
		err = fmt.Errorf("failed to save schedule state: %w", err)
		tracing.RecordScheduleResult(span, result.Scheduled, result.Failed, result.Cancelled, err)
		return result, err
	}

	slog.InfoContext(ctx, "reminders scheduled",
		slog.String("user_id", userID),
		slog.String("plan_date", stamp.PlanDate),
		slog.Int("planned", len(instances)),
		slog.Int("scheduled", result.Scheduled),
		slog.Int("failed", result.Failed),
		slog.Int("cancelled", result.Cancelled),
		slog.Int("cancel_failed", result.CancelFailed),
	)

	tracing.RecordScheduleResult(span, result.Scheduled, result.Failed, result.Cancelled, nil)
	return result, nil
}

// Cancel removes every notification registered for the user and forgets the
// stored state. Ids that could not be cancelled are kept for a later retry.
func (s *Scheduler) Cancel(ctx context.Context, userID string) (*Result, error) {
	if s.notifier == nil {
		slog.WarnContext(ctx, "notifier not configured, skipping reminder cancellation",
			slog.String("user_id", userID),
		)
		return &Result{Skipped: true, NotificationIDs: []string{}}, nil
	}

	ctx, span := tracing.StartScheduleSpan(ctx, userID, 0)
	defer span.End()

	result := &Result{NotificationIDs: []string{}}

	prev, err := s.loadState(ctx, userID)
	if err != nil {
		tracing.RecordScheduleResult(span, 0, 0, 0, err)
		return nil, err
	}
	if prev == nil {
		tracing.RecordScheduleResult(span, 0, 0, 0, nil)
		return result, nil
	}

	carried := s.cancel(ctx, userID, prev.NotificationIDs, result)

	if len(carried) > 0 {
		state := &domain.ScheduleState{
			UserID:          userID,
			PlanDate:        prev.PlanDate,
			NotificationIDs: carried,
			ScheduledAt:     s.now(),
		}
		if err := s.stateRepo.SaveScheduleState(ctx, state); err != nil {
			err = fmt.Errorf("failed to save schedule state: %w", err)
			tracing.RecordScheduleResult(span, 0, 0, result.Cancelled, err)
			return result, err
		}
		err := fmt.Errorf("%d notifications could not be cancelled", len(carried))
		tracing.RecordScheduleResult(span, 0, 0, result.Cancelled, err)
		return result, err
	}

	if err := s.stateRepo.DeleteScheduleState(ctx, userID); err != nil {
		err = fmt.Errorf("failed to delete schedule state: %w", err)
		tracing.RecordScheduleResult(span, 0, 0, result.Cancelled, err)
		return result, err
	}

	slog.InfoContext(ctx, "reminders cancelled",
		slog.String("user_id", userID),
		slog.Int("cancelled", result.Cancelled),
	)

	tracing.RecordScheduleResult(span, 0, 0, result.Cancelled, nil)
	return result, nil
}

// loadState returns nil without error when nothing was stored yet.
func (s *Scheduler) loadState(ctx context.Context, userID string) (*domain.ScheduleState, error) {
	state, err := s.stateRepo.GetScheduleState(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrScheduleStateNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load schedule state: %w", err)
	}
	return state, nil
}

func (s *Scheduler) cancel(ctx context.Context, userID string, ids []string, result *Result) []string {
	if len(ids) == 0 {
		return nil
	}

	err := s.notifier.CancelAll(ctx, ids)
	remaining := domain.UncancelledIDs(err, ids)

	result.Cancelled = len(ids) - len(remaining)
	result.CancelFailed = len(remaining)
	s.metrics.RecordNotificationsCancelled(ctx, result.Cancelled, "success")
	s.metrics.RecordNotificationsCancelled(ctx, result.CancelFailed, "failed")

	if err != nil {
		slog.WarnContext(ctx, "failed to cancel previous reminders, keeping them for retry",
			slog.String("user_id", userID),
			slog.Int("requested", len(ids)),
			slog.Int("remaining", len(remaining)),
			slog.String("error", err.Error()),
		)
	}

	return remaining
}
