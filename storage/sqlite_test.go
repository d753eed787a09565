// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "cache.db")
	s, err := NewSQLite(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_SetGetRemove(t *testing.T) {
	s := newTestSQLite(t)

	_, ok := s.Get("environment")
	assert.False(t, ok)

	require.NoError(t, s.Set("environment", `{"maintenance_mode":false}`))

	got, ok := s.Get("environment")
	require.True(t, ok)
	assert.Equal(t, `{"maintenance_mode":false}`, got)

	// upsert replaces the previous value
	require.NoError(t, s.Set("environment", `{"maintenance_mode":true}`))
	got, _ = s.Get("environment")
	assert.Equal(t, `{"maintenance_mode":true}`, got)

	require.NoError(t, s.Remove("environment"))
	_, ok = s.Get("environment")
	assert.False(t, ok)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "cache.db")

	first, err := NewSQLite(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, first.Set("client", `{"id":"client_1"}`))
	require.NoError(t, first.Close())

	second, err := NewSQLite(context.Background(), dsn)
	require.NoError(t, err)
	defer second.Close()

	got, ok := second.Get("client")
	require.True(t, ok)
	assert.Equal(t, `{"id":"client_1"}`, got)
}

// ── error paths (sqlmock) ───────────────────────────────────────────────────

func TestSQLite_Get_QueryErrorIsMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM cache").
		WithArgs("client").
		WillReturnError(errors.New("disk I/O error"))

	s := &SQLite{db: db}
	_, ok := s.Get("client")
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLite_Set_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO cache").
		WillReturnError(errors.New("database is locked"))

	s := &SQLite{db: db}
	err = s.Set("client", "{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLite_Remove_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM cache").
		WithArgs("client").
		WillReturnError(errors.New("database is locked"))

	s := &SQLite{db: db}
	require.Error(t, s.Remove("client"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
