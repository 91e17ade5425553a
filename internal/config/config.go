package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/observability/logging"
)

const (
	portEnv     = "PORT"
	logLevelEnv = "LOG_LEVEL"
	timezoneEnv = "APP_TIMEZONE"

	defaultPort     = "8080"
	defaultTimezone = "UTC"
)

type Config struct {
	Port     string
	LogLevel slog.Level
	// Location decides which calendar day "today" is and the wall clock of
	// every planned reminder.
	Location *time.Location
	Redis    *RedisConfig
	Store    *StoreConfig
	Notifier NotifierConfig
	Schedule *ScheduleConfig
}

func Load() (*Config, error) {
	port := os.Getenv(portEnv)
	if port == "" {
		port = defaultPort
	}

	tz := os.Getenv(timezoneEnv)
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTimezone, tz, err)
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	scheduleConfig, err := LoadScheduleConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:     port,
		LogLevel: logging.ParseLevel(os.Getenv(logLevelEnv)),
		Location: loc,
		Redis:    redisConfig,
		Store:    LoadStoreConfig(),
		Notifier: LoadNotifierConfig(),
		Schedule: scheduleConfig,
	}, nil
}
