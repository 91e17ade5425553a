package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/logging"
)

const DefaultDailyCron = "5 0 * * *"

var ErrRunnerAlreadyRunning = errors.New("daily runner already running")

type UserLister interface {
	ListUserIDs(ctx context.Context) ([]string, error)
}

// RunSummary counts the outcome of one pass over every user.
type RunSummary struct {
	Users  int
	Synced int
	Failed int
}

// DailyRunner re-plans every user's reminders on a cron schedule, so ended
// courses drop out and the new day is registered without a client request.
type DailyRunner struct {
	service *Service
	users   UserLister
	cron    *cron.Cron
	entry   cron.EntryID
	timeout time.Duration

	mu      sync.Mutex
	running bool
}

func NewDailyRunner(service *Service, users UserLister, expr string, timeout time.Duration) (*DailyRunner, error) {
	if expr == "" {
		expr = DefaultDailyCron
	}
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}

	logger := cron.PrintfLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn))

	r := &DailyRunner{
		service: service,
		users:   users,
		timeout: timeout,
		cron: cron.New(
			cron.WithLocation(service.Location()),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}

	id, err := r.cron.AddFunc(expr, r.tick)
	if err != nil {
		return nil, fmt.Errorf("invalid daily sync schedule %q: %w", expr, err)
	}
	r.entry = id

	return r, nil
}

func (r *DailyRunner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return ErrRunnerAlreadyRunning
	}
	r.running = true
	r.cron.Start()

	slog.Info("daily reminder sync started",
		slog.Time("next_run", r.NextRun()),
	)
	return nil
}

// Stop prevents new runs and waits for a running one until ctx is done.
func (r *DailyRunner) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	r.mu.Unlock()

	select {
	case <-r.cron.Stop().Done():
		slog.Info("daily reminder sync stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NextRun is the next scheduled pass, zero while the runner is stopped.
func (r *DailyRunner) NextRun() time.Time {
	return r.cron.Entry(r.entry).Next
}

func (r *DailyRunner) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *DailyRunner) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	ctx = logging.WithModule(ctx, logging.Module("daily-sync"))
	ctx = logging.WithRequestID(ctx, logging.NewRequestID())

	if _, err := r.RunOnce(ctx); err != nil {
		slog.ErrorContext(ctx, "daily reminder sync failed", slog.String("error", err.Error()))
	}
}

// RunOnce force-syncs every user. A failing user is logged and counted and
// does not stop the pass.
func (r *DailyRunner) RunOnce(ctx context.Context) (RunSummary, error) {
	ids, err := r.users.ListUserIDs(ctx)
	if err != nil {
		return RunSummary{}, fmt.Errorf("failed to list users: %w", err)
	}

	summary := RunSummary{Users: len(ids)}
	now := r.service.Now()

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if _, err := r.service.run(ctx, id, now, true, TriggerDaily); err != nil {
			summary.Failed++
			continue
		}
		summary.Synced++
	}

	slog.InfoContext(ctx, "daily reminder sync completed",
		slog.Int("users", summary.Users),
		slog.Int("synced", summary.Synced),
		slog.Int("failed", summary.Failed),
	)
	return summary, nil
}
