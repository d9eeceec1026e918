package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// schema is created once at Open. expires_at is unix nanoseconds; NULL means
// no expiry.
const schema = `
CREATE TABLE IF NOT EXISTS entries (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	saved_at   INTEGER NOT NULL,
	expires_at INTEGER
);
`

// SQLStore is a persistent Store backed by SQLite. It suits CLI use where
// entries must survive between invocations.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens or creates the database at path and ensures the schema.
// The parent directory is created if missing.
func OpenSQLStore(path string) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Close() error { return s.db.Close() }

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	var expiresAt sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM entries WHERE key = ?", key,
	).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read entry: %w", err)
	}
	if expiresAt.Valid && time.Now().UnixNano() > expiresAt.Int64 {
		_, _ = s.db.ExecContext(ctx, "DELETE FROM entries WHERE key = ?", key)
		return nil, false, nil
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := time.Now()
	var expiresAt sql.NullInt64
	if ttl > 0 {
		expiresAt = sql.NullInt64{Int64: now.Add(ttl).UnixNano(), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (key, value, saved_at, expires_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			saved_at = excluded.saved_at,
			expires_at = excluded.expires_at`,
		key, value, now.UnixNano(), expiresAt)
	if err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (s *SQLStore) DeletePrefix(ctx context.Context, prefix string) error {
	// substr comparison avoids LIKE wildcard interpretation in keys.
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM entries WHERE substr(key, 1, ?) = ?", len(prefix), prefix)
	if err != nil {
		return fmt.Errorf("delete by prefix: %w", err)
	}
	return nil
}
