// Package store keeps rendered dial images in SQLite so the HTTP host can
// answer repeated requests for the same chart without rasterizing again.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDirPerm = 0o755

var (
	// ErrInvalidPath is returned by Open for an empty database path.
	ErrInvalidPath = errors.New("store: invalid database path")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("store: closed")
)

// Cache stores encoded images by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, image []byte) error
	Close() error
}

// SQLite is a Cache backed by a SQLite database file.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
	// now is swapped in tests.
	now func() time.Time
}

// Open opens or creates the database at path.
func Open(path string) (*SQLite, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), defaultDirPerm); err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases alive and serializes
	// writers.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db, now: time.Now}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS renders (
            key        TEXT PRIMARY KEY,
            image      BLOB NOT NULL,
            created_at INTEGER NOT NULL,
            used_at    INTEGER NOT NULL,
            hits       INTEGER NOT NULL DEFAULT 0
        );
        CREATE INDEX IF NOT EXISTS renders_used_at ON renders(used_at);
    `)
	if err != nil {
		return fmt.Errorf("store: init schema: %w", err)
	}
	return nil
}

// Get returns the image stored under key and records the hit.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, false, ErrClosed
	}

	var img []byte
	err := s.db.QueryRowContext(ctx, `SELECT image FROM renders WHERE key = ?`, key).Scan(&img)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: get: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE renders SET hits = hits + 1, used_at = ? WHERE key = ?`,
		s.now().Unix(), key)
	if err != nil {
		return nil, false, fmt.Errorf("store: touch: %w", err)
	}
	return img, true, nil
}

// Put stores image under key, replacing an earlier entry.
func (s *SQLite) Put(ctx context.Context, key string, image []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrClosed
	}

	now := s.now().Unix()
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO renders (key, image, created_at, used_at) VALUES (?, ?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET
            image = excluded.image,
            created_at = excluded.created_at,
            used_at = excluded.used_at
    `, key, image, now, now)
	if err != nil {
		return fmt.Errorf("store: put: %w", err)
	}
	return nil
}

// Hits returns how often key has been served from the cache.
func (s *SQLite) Hits(ctx context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return 0, ErrClosed
	}

	var n int
	err := s.db.QueryRowContext(ctx, `SELECT hits FROM renders WHERE key = ?`, key).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("store: hits: %w", err)
	}
	return n, nil
}

// Prune deletes entries not used within maxAge and reports how many were
// removed.
func (s *SQLite) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return 0, ErrClosed
	}

	cutoff := s.now().Add(-maxAge).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM renders WHERE used_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("store: prune: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the database. Further calls return ErrClosed.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("store: close: %w", err)
	}
	return nil
}

// Key derives a cache key from any JSON-encodable request. Map keys are
// sorted by encoding/json, so equal requests give equal keys.
func Key(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("store: key: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
