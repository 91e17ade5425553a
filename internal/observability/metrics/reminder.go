package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const reminderMeterName = "medication.reminder"

type ReminderMetrics struct {
	syncs                  metric.Int64Counter
	syncDuration           metric.Float64Histogram
	plannedInstances       metric.Int64Histogram
	notificationsScheduled metric.Int64Counter
	notificationsCancelled metric.Int64Counter
	invalidMedicines       metric.Int64Counter
}

func NewReminderMetrics() (*ReminderMetrics, error) {
	meter := otel.Meter(reminderMeterName)

	syncs, err := meter.Int64Counter(
		"medication_sync_total",
		metric.WithDescription("Total number of reminder sync passes"),
		metric.WithUnit("{sync}"),
	)
	if err != nil {
		return nil, err
	}

	syncDuration, err := meter.Float64Histogram(
		"medication_sync_duration_seconds",
		metric.WithDescription("Reminder sync pass duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	plannedInstances, err := meter.Int64Histogram(
		"medication_planned_reminders",
		metric.WithDescription("Reminders planned per sync pass"),
		metric.WithUnit("{reminder}"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 4, 8, 16, 32, 64),
	)
	if err != nil {
		return nil, err
	}

	notificationsScheduled, err := meter.Int64Counter(
		"medication_notifications_scheduled_total",
		metric.WithDescription("Notifications registered with the notifier"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	notificationsCancelled, err := meter.Int64Counter(
		"medication_notifications_cancelled_total",
		metric.WithDescription("Notifications cancelled with the notifier"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	invalidMedicines, err := meter.Int64Counter(
		"medication_invalid_total",
		metric.WithDescription("Medicines excluded from planning because their row is malformed"),
		metric.WithUnit("{medicine}"),
	)
	if err != nil {
		return nil, err
	}

	return &ReminderMetrics{
		syncs:                  syncs,
		syncDuration:           syncDuration,
		plannedInstances:       plannedInstances,
		notificationsScheduled: notificationsScheduled,
		notificationsCancelled: notificationsCancelled,
		invalidMedicines:       invalidMedicines,
	}, nil
}

// Every method tolerates a nil receiver so services can run without metrics.

func (m *ReminderMetrics) RecordSync(ctx context.Context, trigger, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("trigger", trigger),
		attribute.String("outcome", outcome),
	)
	m.syncs.Add(ctx, 1, attrs)
	m.syncDuration.Record(ctx, duration.Seconds(), attrs)
}

func (m *ReminderMetrics) RecordPlanned(ctx context.Context, count int) {
	if m == nil {
		return
	}
	m.plannedInstances.Record(ctx, int64(count))
}

func (m *ReminderMetrics) RecordNotificationScheduled(ctx context.Context, slot, outcome string) {
	if m == nil {
		return
	}
	m.notificationsScheduled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("slot", slot),
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordNotificationsCancelled(ctx context.Context, count int, outcome string) {
	if m == nil || count == 0 {
		return
	}
	m.notificationsCancelled.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ReminderMetrics) RecordInvalidMedicines(ctx context.Context, count int) {
	if m == nil || count == 0 {
		return
	}
	m.invalidMedicines.Add(ctx, int64(count))
}
