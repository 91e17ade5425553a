//go:build gcloud

package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

// CloudTasksClient schedules each trigger as a Cloud Task at its next
// occurrence. The push target re-enqueues repeating triggers after delivery.
type CloudTasksClient struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
	maxRetries int
	location   *time.Location
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
	Location   *time.Location
}

func NewCloudTasksClient(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksClient, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &CloudTasksClient{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
		maxRetries: maxRetries,
		location:   loc,
	}, nil
}

func (c *CloudTasksClient) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s", c.projectID, c.locationID, c.queueID)
}

func (c *CloudTasksClient) taskPath(taskID string) string {
	return fmt.Sprintf("%s/tasks/%s", c.queuePath(), taskID)
}

func (c *CloudTasksClient) ScheduleRecurring(ctx context.Context, trigger domain.Trigger) (string, error) {
	taskID := uuid.NewString()

	scheduleAt := trigger.FirstFireTime
	if scheduleAt.IsZero() || !scheduleAt.After(time.Now()) {
		scheduleAt = trigger.NextOccurrence(time.Now().In(c.location))
	}

	payload, err := json.Marshal(taskPayload{
		NotificationID: taskID,
		UserID:         trigger.UserID,
		MedicineID:     trigger.MedicineID,
		Slot:           string(trigger.Slot),
		Title:          trigger.Title,
		Body:           trigger.Body,
		Trigger: pushTime{
			Hour:    trigger.Hour,
			Minute:  trigger.Minute,
			Weekday: int(trigger.Weekday),
			Repeats: trigger.Repeats,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	req := &taskspb.CreateTaskRequest{
		Parent: c.queuePath(),
		Task: &taskspb.Task{
			Name: c.taskPath(taskID),
			MessageType: &taskspb.Task_HttpRequest{
				HttpRequest: &taskspb.HttpRequest{
					HttpMethod: taskspb.HttpMethod_POST,
					Url:        c.targetURL,
					Headers: map[string]string{
						"Content-Type": "application/json",
					},
					Body: payload,
				},
			},
			ScheduleTime: timestamppb.New(scheduleAt),
		},
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			slog.DebugContext(ctx, "retrying task registration",
				slog.String("medicine_id", trigger.MedicineID),
				slog.String("user_id", trigger.UserID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoffFor(attempt)),
			)
		}
		if err := waitBackoff(ctx, attempt); err != nil {
			return "", err
		}

		err := c.createTask(ctx, req, trigger)
		if err == nil {
			return taskID, nil
		}
		if status.Code(err) == codes.AlreadyExists {
			// An earlier attempt succeeded but its response was lost.
			return taskID, nil
		}
		lastErr = err
	}

	slog.ErrorContext(ctx, "all retries exhausted for task registration",
		slog.String("medicine_id", trigger.MedicineID),
		slog.String("user_id", trigger.UserID),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return "", fmt.Errorf("failed to register task after %d retries: %w", c.maxRetries, lastErr)
}

func (c *CloudTasksClient) createTask(ctx context.Context, req *taskspb.CreateTaskRequest, trigger domain.Trigger) error {
	createdTask, err := c.client.CreateTask(ctx, req)
	if err != nil {
		slog.WarnContext(ctx, "failed to create cloud task",
			slog.String("medicine_id", trigger.MedicineID),
			slog.String("user_id", trigger.UserID),
			slog.String("error", err.Error()),
		)
		return err
	}

	slog.InfoContext(ctx, "notification task registered to Cloud Tasks",
		slog.String("task_name", createdTask.GetName()),
		slog.String("medicine_id", trigger.MedicineID),
		slog.String("user_id", trigger.UserID),
		slog.Time("schedule_time", createdTask.GetScheduleTime().AsTime()),
	)
	return nil
}

func (c *CloudTasksClient) CancelAll(ctx context.Context, ids []string) error {
	var (
		failed []string
		errs   []error
	)
	for _, id := range ids {
		if err := c.deleteTask(ctx, id); err != nil {
			failed = append(failed, id)
			errs = append(errs, fmt.Errorf("task %s: %w", id, err))
		}
	}

	if len(failed) > 0 {
		return &domain.CancelError{FailedIDs: failed, Err: errors.Join(errs...)}
	}
	return nil
}

func (c *CloudTasksClient) deleteTask(ctx context.Context, taskID string) error {
	req := &taskspb.DeleteTaskRequest{
		Name: c.taskPath(taskID),
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := waitBackoff(ctx, attempt); err != nil {
			return err
		}

		err := c.client.DeleteTask(ctx, req)
		if err == nil {
			slog.InfoContext(ctx, "task deleted from Cloud Tasks", slog.String("task_id", taskID))
			return nil
		}
		if status.Code(err) == codes.NotFound {
			slog.InfoContext(ctx, "task not found in Cloud Tasks (may have been processed)",
				slog.String("task_id", taskID),
			)
			return nil
		}

		slog.WarnContext(ctx, "failed to delete cloud task",
			slog.String("task_id", taskID),
			slog.String("error", err.Error()),
		)
		lastErr = err
	}

	return fmt.Errorf("failed to delete task after %d retries: %w", c.maxRetries, lastErr)
}

func (c *CloudTasksClient) Close() error {
	return c.client.Close()
}
