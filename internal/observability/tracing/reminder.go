package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const reminderTracerName = "github.com/KasumiMercury/primind-medication-reminder/internal/service"

func ReminderTracer() trace.Tracer {
	return otel.Tracer(reminderTracerName)
}

func StartSyncSpan(ctx context.Context, userID, trigger string, force bool) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.sync",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.String("sync.trigger", trigger),
			attribute.Bool("sync.force", force),
		),
	)
}

func StartPlanSpan(ctx context.Context, userID string, medicineCount int) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.plan",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.Int("plan.medicine_count", medicineCount),
		),
	)
}

func StartScheduleSpan(ctx context.Context, userID string, instanceCount int) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.schedule",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.Int("schedule.instance_count", instanceCount),
		),
	)
}

func StartNotifierSpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return ReminderTracer().Start(ctx, "reminder.notifier."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordPlanResult(span trace.Span, plannedCount, invalidCount int) {
	span.SetAttributes(
		attribute.Int("plan.planned_count", plannedCount),
		attribute.Int("plan.invalid_count", invalidCount),
	)
	span.SetStatus(codes.Ok, "")
}

func RecordSyncResult(span trace.Span, outcome string, plannedCount int, err error) {
	span.SetAttributes(
		attribute.String("sync.outcome", outcome),
		attribute.Int("sync.planned_count", plannedCount),
	)
	recordError(span, err)
}

func RecordScheduleResult(span trace.Span, scheduledCount, failedCount, cancelledCount int, err error) {
	span.SetAttributes(
		attribute.Int("schedule.scheduled_count", scheduledCount),
		attribute.Int("schedule.failed_count", failedCount),
		attribute.Int("schedule.cancelled_count", cancelledCount),
	)
	recordError(span, err)
}

func RecordNotifierResult(span trace.Span, statusCode int, err error) {
	if statusCode > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", statusCode))
	}
	recordError(span, err)
}

func recordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
