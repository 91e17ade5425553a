package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/tracing"
)

var errUnexpectedStatus = errors.New("unexpected status code")

// PushGatewayClient registers repeating notifications with an HTTP push
// gateway.
type PushGatewayClient struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

func NewPushGatewayClient(baseURL string, maxRetries int) *PushGatewayClient {
	return newPushGatewayClient(baseURL, newHTTPClient(baseURL), maxRetries)
}

func newPushGatewayClient(baseURL string, httpClient *http.Client, maxRetries int) *PushGatewayClient {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &PushGatewayClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		maxRetries: maxRetries,
	}
}

func (c *PushGatewayClient) ScheduleRecurring(ctx context.Context, trigger domain.Trigger) (string, error) {
	body := pushRequest{
		UserID:     trigger.UserID,
		MedicineID: trigger.MedicineID,
		Slot:       string(trigger.Slot),
		Title:      trigger.Title,
		Body:       trigger.Body,
		Trigger: pushTime{
			Hour:    trigger.Hour,
			Minute:  trigger.Minute,
			Weekday: int(trigger.Weekday),
			Repeats: trigger.Repeats,
		},
		RequestedAt: time.Now().UTC(),
	}
	if !trigger.FirstFireTime.IsZero() {
		body.FirstFireTime = trigger.FirstFireTime.Format(time.RFC3339)
	}

	reqBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notification request: %w", err)
	}

	endpoint := c.baseURL + "/notifications"

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			slog.DebugContext(ctx, "retrying notification registration",
				slog.String("medicine_id", trigger.MedicineID),
				slog.String("user_id", trigger.UserID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoffFor(attempt)),
			)
		}
		if err := waitBackoff(ctx, attempt); err != nil {
			return "", err
		}

		id, err := c.doSchedule(ctx, endpoint, reqBody, trigger)
		if err == nil {
			return id, nil
		}
		lastErr = err
	}

	slog.ErrorContext(ctx, "all retries exhausted for notification registration",
		slog.String("medicine_id", trigger.MedicineID),
		slog.String("user_id", trigger.UserID),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return "", fmt.Errorf("failed to register notification after %d retries: %w", c.maxRetries, lastErr)
}

func (c *PushGatewayClient) doSchedule(ctx context.Context, endpoint string, reqBody []byte, trigger domain.Trigger) (string, error) {
	ctx, span := tracing.StartNotifierSpan(ctx, "schedule", endpoint)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.decorate(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "failed to send request to push gateway",
			slog.String("medicine_id", trigger.MedicineID),
			slog.String("user_id", trigger.UserID),
			slog.String("error", err.Error()),
		)
		tracing.RecordNotifierResult(span, 0, err)
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		err := fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
		slog.WarnContext(ctx, "unexpected status code from push gateway",
			slog.String("medicine_id", trigger.MedicineID),
			slog.String("user_id", trigger.UserID),
			slog.Int("status_code", resp.StatusCode),
		)
		tracing.RecordNotifierResult(span, resp.StatusCode, err)
		return "", err
	}

	var pushResp pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&pushResp); err != nil {
		tracing.RecordNotifierResult(span, resp.StatusCode, err)
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if pushResp.ID == "" {
		err := errors.New("push gateway returned an empty notification id")
		tracing.RecordNotifierResult(span, resp.StatusCode, err)
		return "", err
	}

	tracing.RecordNotifierResult(span, resp.StatusCode, nil)

	slog.InfoContext(ctx, "notification registered to push gateway",
		slog.String("notification_id", pushResp.ID),
		slog.String("medicine_id", trigger.MedicineID),
		slog.String("user_id", trigger.UserID),
	)

	return pushResp.ID, nil
}

// CancelAll deletes every notification id. Ids the gateway no longer knows
// count as cancelled. Failures do not stop the remaining deletions.
func (c *PushGatewayClient) CancelAll(ctx context.Context, ids []string) error {
	var (
		failed []string
		errs   []error
	)
	for _, id := range ids {
		if err := c.cancel(ctx, id); err != nil {
			failed = append(failed, id)
			errs = append(errs, fmt.Errorf("notification %s: %w", id, err))
		}
	}

	if len(failed) > 0 {
		return &domain.CancelError{FailedIDs: failed, Err: errors.Join(errs...)}
	}
	return nil
}

func (c *PushGatewayClient) cancel(ctx context.Context, id string) error {
	endpoint := c.baseURL + "/notifications/" + url.PathEscape(id)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := waitBackoff(ctx, attempt); err != nil {
			return err
		}

		err := c.doCancel(ctx, endpoint, id)
		if err == nil {
			return nil
		}
		lastErr = err
	}

	slog.ErrorContext(ctx, "all retries exhausted for notification cancellation",
		slog.String("notification_id", id),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return fmt.Errorf("failed to cancel notification after %d retries: %w", c.maxRetries, lastErr)
}

func (c *PushGatewayClient) doCancel(ctx context.Context, endpoint, id string) error {
	ctx, span := tracing.StartNotifierSpan(ctx, "cancel", endpoint)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.decorate(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		tracing.RecordNotifierResult(span, 0, err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		slog.DebugContext(ctx, "notification cancelled", slog.String("notification_id", id))
	case http.StatusNotFound:
		slog.InfoContext(ctx, "notification not found in push gateway (may have been removed)",
			slog.String("notification_id", id),
		)
	default:
		err := fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
		tracing.RecordNotifierResult(span, resp.StatusCode, err)
		return err
	}

	tracing.RecordNotifierResult(span, resp.StatusCode, nil)
	return nil
}

func (c *PushGatewayClient) decorate(ctx context.Context, req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)
}
