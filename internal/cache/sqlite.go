package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	createCVRCacheTable = `CREATE TABLE IF NOT EXISTS cvr_cache (
		client_group_id TEXT    NOT NULL,
		version         INTEGER NOT NULL,
		payload         BLOB    NOT NULL,
		expires_at      INTEGER NOT NULL,
		PRIMARY KEY (client_group_id, version)
	);`

	selectCVREntry = `SELECT payload, expires_at FROM cvr_cache
		WHERE client_group_id = ? AND version = ?;`

	upsertCVREntry = `INSERT INTO cvr_cache (client_group_id, version, payload, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (client_group_id, version) DO UPDATE
		SET payload = excluded.payload, expires_at = excluded.expires_at;`

	deleteCVREntry = `DELETE FROM cvr_cache WHERE client_group_id = ? AND version = ?;`

	deleteExpiredCVREntries = `DELETE FROM cvr_cache WHERE expires_at <= ?;`
)

// SQLiteStore keeps entries in a local sqlite file, independent of the
// primary database.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (creating if needed) the sqlite file at path.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningBackend, err)
	}
	// sqlite serializes writers anyway
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, createCVRCacheTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: creating cvr_cache table: %w", ErrOpeningBackend, err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) load(ctx context.Context, key entryKey) ([]byte, bool, error) {
	var (
		payload   []byte
		expiresAt int64
	)
	err := s.db.QueryRowContext(ctx, selectCVREntry, key.ClientGroupID, key.Version).Scan(&payload, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrReadingEntry, err)
	}
	if expiresAt <= s.now().UnixNano() {
		return nil, false, nil
	}
	return payload, true, nil
}

func (s *SQLiteStore) save(ctx context.Context, key entryKey, payload []byte, ttl time.Duration) error {
	_, err := s.db.ExecContext(ctx, upsertCVREntry, key.ClientGroupID, key.Version, payload, s.now().Add(ttl).UnixNano())
	return err
}

func (s *SQLiteStore) remove(ctx context.Context, key entryKey) error {
	_, err := s.db.ExecContext(ctx, deleteCVREntry, key.ClientGroupID, key.Version)
	return err
}

// Purge deletes expired entries and reports how many were removed.
func (s *SQLiteStore) Purge(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteExpiredCVREntries, s.now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDeletingEntry, err)
	}
	return res.RowsAffected()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
