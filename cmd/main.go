package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-medication-reminder/internal/config"
	"github.com/KasumiMercury/primind-medication-reminder/internal/handler"
	"github.com/KasumiMercury/primind-medication-reminder/internal/health"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/store"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/syncrecorder"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/middleware"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/course"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/notify"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/profile"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/syncer"
)

// Version is set via ldflags at build time
var Version = "dev"

const module = logging.Module("medication-reminder")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg.LogLevel)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.Notifier.Validate(); err != nil {
		slog.Error("notifier configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	reminderMetrics, err := metrics.NewReminderMetrics()
	if err != nil {
		slog.Error("failed to initialize reminder metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB locally, BigQuery on gcloud
	resultRecorder, err := syncrecorder.NewRecorder(ctx, syncrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize sync result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close sync result recorder", slog.String("error", err.Error()))
		}
	}()

	db, err := store.Open(ctx, store.Options{
		Path:         cfg.Store.Path,
		MaxOpenConns: cfg.Store.MaxOpenConns,
	})
	if err != nil {
		slog.Error("failed to open store",
			slog.String("event", "store.open.fail"),
			slog.String("path", cfg.Store.Path),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("failed to close store", slog.String("error", err.Error()))
		}
	}()

	slog.Info("store opened", slog.String("path", cfg.Store.Path))

	notifier, cleanup, err := initNotifier(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize notifier", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("notifier cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient := redis.NewClient(cfg.Redis.Options())

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
		slog.Bool("tls", cfg.Redis.TLS),
	)

	medicines := store.NewMedicineStore(db)
	users := store.NewUserStore(db)
	stateRepo := repository.NewScheduleStateRepository(redisClient)

	scheduler := notify.NewScheduler(notifier, stateRepo, reminderMetrics)
	syncService := syncer.NewService(medicines, stateRepo, scheduler, resultRecorder, reminderMetrics, cfg.Location)
	courseService := course.NewService(medicines, users, syncService, cfg.Location)
	profileService := profile.NewService(users, syncService)

	if !cfg.Schedule.Disabled {
		dailyRunner, err := syncer.NewDailyRunner(syncService, users, cfg.Schedule.Cron, cfg.Schedule.Timeout)
		if err != nil {
			slog.Error("failed to initialize daily sync", slog.String("error", err.Error()))
			return 1
		}
		if err := dailyRunner.Start(); err != nil {
			slog.Error("failed to start daily sync", slog.String("error", err.Error()))
			return 1
		}
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer stopCancel()
			if err := dailyRunner.Stop(stopCtx); err != nil {
				slog.Warn("daily sync did not stop cleanly", slog.String("error", err.Error()))
			}
		}()
	}

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      module,
		TracerName:  "github.com/KasumiMercury/primind-medication-reminder/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(Version, map[string]health.Pinger{
		"redis":  health.RedisPinger(redisClient),
		"sqlite": db,
	})
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	handler.NewUserHandler(profileService).Register(v1)
	handler.NewMedicineHandler(courseService, cfg.Location).Register(v1)
	handler.NewReminderHandler(syncService, users).Register(v1)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", cfg.Location.String()),
			slog.Bool("scheduling_enabled", scheduler.Enabled()),
			slog.Bool("daily_sync_enabled", !cfg.Schedule.Disabled),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
