package config

import "errors"

var (
	ErrRedisAddrMissing   = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB     = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidTimezone    = errors.New("APP_TIMEZONE must be an IANA time zone")
	ErrSQLitePathMissing  = errors.New("SQLITE_PATH is required")
	ErrInvalidSyncTimeout = errors.New("DAILY_SYNC_TIMEOUT must be a positive duration")
)
