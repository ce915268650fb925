package store

import (
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepos(t *testing.T) (*repositories, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return newRepositories(newDB(db, logger.Nop()).DB), mock
}

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code}
}
