package config

import (
	"os"
	"strconv"
)

const (
	sqlitePathEnv         = "SQLITE_PATH"
	sqliteMaxOpenConnsEnv = "SQLITE_MAX_OPEN_CONNS"

	defaultSQLitePath         = "medication.db"
	defaultSQLiteMaxOpenConns = 4
)

type StoreConfig struct {
	Path         string
	MaxOpenConns int
}

func LoadStoreConfig() *StoreConfig {
	path := os.Getenv(sqlitePathEnv)
	if path == "" {
		path = defaultSQLitePath
	}

	maxOpen := defaultSQLiteMaxOpenConns
	if v := os.Getenv(sqliteMaxOpenConnsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxOpen = parsed
		}
	}

	return &StoreConfig{
		Path:         path,
		MaxOpenConns: maxOpen,
	}
}

func (c *StoreConfig) Validate() error {
	if c == nil || c.Path == "" {
		return ErrSQLitePathMissing
	}
	return nil
}
