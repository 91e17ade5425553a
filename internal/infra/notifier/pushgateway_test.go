package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

func testTrigger() domain.Trigger {
	return domain.Trigger{
		UserID:        "user-1",
		MedicineID:    "med-1",
		Slot:          domain.SlotAfterBreakfast,
		Title:         "💊 Time to take your medication: Amoxicillin",
		Body:          "After Breakfast",
		Hour:          8,
		Minute:        0,
		Weekday:       domain.Wednesday,
		Repeats:       true,
		FirstFireTime: time.Date(2024, time.January, 3, 8, 0, 0, 0, time.UTC),
	}
}

func TestPushGatewayClient_ScheduleRecurring(t *testing.T) {
	var got pushRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/notifications" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("x-request-id") == "" {
			t.Error("expected x-request-id header")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"notif-1"}`))
	}))
	defer server.Close()

	client := newPushGatewayClient(server.URL+"/", server.Client(), 3)

	id, err := client.ScheduleRecurring(context.Background(), testTrigger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "notif-1" {
		t.Errorf("id = %q, want %q", id, "notif-1")
	}
	if got.Title != "💊 Time to take your medication: Amoxicillin" || got.Body != "After Breakfast" {
		t.Errorf("unexpected content: %+v", got)
	}
	if got.Trigger != (pushTime{Hour: 8, Minute: 0, Weekday: 3, Repeats: true}) {
		t.Errorf("unexpected trigger: %+v", got.Trigger)
	}
	if got.FirstFireTime != "2024-01-03T08:00:00Z" {
		t.Errorf("FirstFireTime = %q", got.FirstFireTime)
	}
}

func TestPushGatewayClient_ScheduleRecurringRetries(t *testing.T) {
	tests := []struct {
		name      string
		failures  int32
		wantErr   bool
		wantCalls int32
	}{
		{name: "recovers after one failure", failures: 1, wantErr: false, wantCalls: 2},
		{name: "gives up after max retries", failures: 10, wantErr: true, wantCalls: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) <= tt.failures {
					w.WriteHeader(http.StatusServiceUnavailable)
					return
				}
				_, _ = w.Write([]byte(`{"id":"notif-1"}`))
			}))
			defer server.Close()

			client := newPushGatewayClient(server.URL, server.Client(), 3)

			_, err := client.ScheduleRecurring(context.Background(), testTrigger())
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errUnexpectedStatus) {
				t.Errorf("expected errUnexpectedStatus, got %v", err)
			}
			if calls.Load() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls.Load(), tt.wantCalls)
			}
		})
	}
}

func TestPushGatewayClient_ScheduleRecurringEmptyID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newPushGatewayClient(server.URL, server.Client(), 1)

	if _, err := client.ScheduleRecurring(context.Background(), testTrigger()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPushGatewayClient_CancelAll(t *testing.T) {
	var (
		mu      sync.Mutex
		deleted []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		id := strings.TrimPrefix(r.URL.Path, "/notifications/")
		switch id {
		case "gone":
			w.WriteHeader(http.StatusNotFound)
		case "stuck":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			mu.Lock()
			deleted = append(deleted, id)
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	client := newPushGatewayClient(server.URL, server.Client(), 2)

	t.Run("all cancelled", func(t *testing.T) {
		if err := client.CancelAll(context.Background(), []string{"a", "gone", "b"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(deleted, []string{"a", "b"}) {
			t.Errorf("deleted = %v, want [a b]", deleted)
		}
	})

	t.Run("partial failure reports failed ids", func(t *testing.T) {
		err := client.CancelAll(context.Background(), []string{"c", "stuck"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}

		var cancelErr *domain.CancelError
		if !errors.As(err, &cancelErr) {
			t.Fatalf("expected *domain.CancelError, got %T", err)
		}
		if !slices.Equal(cancelErr.FailedIDs, []string{"stuck"}) {
			t.Errorf("FailedIDs = %v, want [stuck]", cancelErr.FailedIDs)
		}
		if !slices.Contains(deleted, "c") {
			t.Errorf("expected c to be deleted despite the other failure, got %v", deleted)
		}
	})

	t.Run("nothing to cancel", func(t *testing.T) {
		if err := client.CancelAll(context.Background(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPushGatewayClient_ContextCancelledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newPushGatewayClient(server.URL, server.Client(), 5)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ScheduleRecurring(ctx, testTrigger())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}
