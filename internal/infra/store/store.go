package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/glebarez/go-sqlite" // pure Go SQLite driver
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrStoreClosed = errors.New("store is closed")

type Options struct {
	Path            string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// Store owns the SQLite connection shared by the medicine and user stores.
type Store struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// Open connects to the SQLite file at opts.Path and migrates the schema.
// ":memory:" is accepted and pinned to a single connection.
func Open(ctx context.Context, opts Options) (*Store, error) {
	dsn := buildDSN(opts.Path)

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 || opts.Path == ":memory:" {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect sqlite: %w", err)
	}

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&userRow{}, &medicineRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &Store{db: db, sqlDB: sqlDB}, nil
}

const pragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// buildDSN appends the connection pragmas, keeping any query the path
// already carries.
func buildDSN(path string) string {
	if path == ":memory:" {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&" + pragmas
	}
	return path + "?" + pragmas
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	if s.sqlDB == nil {
		return ErrStoreClosed
	}
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	if s.sqlDB == nil {
		return ErrStoreClosed
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil
	return err
}
