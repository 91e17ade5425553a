package config

import (
	"fmt"
	"os"
	"time"
)

const (
	dailySyncCronEnv     = "DAILY_SYNC_CRON"
	dailySyncTimeoutEnv  = "DAILY_SYNC_TIMEOUT"
	dailySyncDisabledEnv = "DAILY_SYNC_DISABLED"

	defaultDailySyncCron    = "5 0 * * *"
	defaultDailySyncTimeout = 10 * time.Minute
)

type ScheduleConfig struct {
	Disabled bool
	// Cron is a standard five-field expression evaluated in the app time zone.
	Cron    string
	Timeout time.Duration
}

func LoadScheduleConfig() (*ScheduleConfig, error) {
	expr := os.Getenv(dailySyncCronEnv)
	if expr == "" {
		expr = defaultDailySyncCron
	}

	timeout := defaultDailySyncTimeout
	if raw := os.Getenv(dailySyncTimeoutEnv); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSyncTimeout, raw)
		}
		timeout = parsed
	}

	return &ScheduleConfig{
		Disabled: os.Getenv(dailySyncDisabledEnv) == "true",
		Cron:     expr,
		Timeout:  timeout,
	}, nil
}
