// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const (
	getCacheValue    = `SELECT value FROM cache WHERE key = ?;`
	upsertCacheValue = `INSERT INTO cache (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP;`
	removeCacheValue = `DELETE FROM cache WHERE key = ?;`
)

// SQLite is a [Storage] backed by a local SQLite database file, so cached
// authentication state survives process restarts. The database file is
// created on first open and the schema is applied via embedded goose
// migrations.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite opens (creating if necessary) the SQLite database at dsn and runs
// pending schema migrations. Use ":memory:" for an ephemeral database.
func NewSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	if dsn != ":memory:" {
		if err := createDBFileIfNotExists(dsn); err != nil {
			return nil, fmt.Errorf("create cache database file: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping cache database: %w", err)
	}

	if err = migrate(db); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func createDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return err
		}
		return f.Close()
	}
	return nil
}

// Get implements [Storage]. A query failure is reported as an absent key:
// the caller's contract treats storage read errors as cache misses.
func (s *SQLite) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow(getCacheValue, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set implements [Storage].
func (s *SQLite) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(upsertCacheValue, key, value); err != nil {
		return fmt.Errorf("set cache value %q: %w", key, err)
	}
	return nil
}

// Remove implements [Storage].
func (s *SQLite) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(removeCacheValue, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("remove cache value %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
