package database

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

// ErrNotFound is returned when no response is cached for a key
var ErrNotFound = errors.New("cached response not found")

// DBPath returns the default path of the response cache database
func DBPath() string {
	return filepath.Join("data", "oahu-surf.db")
}

// CachedResponse is the last successful response body stored for a request
type CachedResponse struct {
	Key         string
	StatusCode  int
	ContentType string
	Body        []byte
	StoredAt    time.Time
}

// Store persists HTTP response bodies in a local SQLite file
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dbPath and ensures the
// cache schema exists
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if err := ensureCacheSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// EnsureCacheSchema creates the http_cache table in the database at dbPath
// if it does not exist
func EnsureCacheSchema(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database to ensure schema: %w", err)
	}
	defer db.Close()

	return ensureCacheSchema(db)
}

func ensureCacheSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS http_cache (
			cache_key TEXT PRIMARY KEY,
			status_code INTEGER NOT NULL,
			content_type TEXT,
			body BLOB NOT NULL,
			stored_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating http_cache table: %w", err)
	}
	return nil
}

// Get returns the cached response for key, or ErrNotFound
func (s *Store) Get(ctx context.Context, key string) (*CachedResponse, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT cache_key, status_code, content_type, body, stored_at FROM http_cache WHERE cache_key = ?`, key)

	var (
		resp        CachedResponse
		contentType sql.NullString
		storedAt    int64
	)
	if err := row.Scan(&resp.Key, &resp.StatusCode, &contentType, &resp.Body, &storedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading cached response: %w", err)
	}
	resp.ContentType = contentType.String
	resp.StoredAt = time.Unix(storedAt, 0)

	return &resp, nil
}

// Put stores resp, replacing any previous entry for the same key
func (s *Store) Put(ctx context.Context, resp CachedResponse) error {
	if resp.StoredAt.IsZero() {
		resp.StoredAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO http_cache (cache_key, status_code, content_type, body, stored_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			status_code = excluded.status_code,
			content_type = excluded.content_type,
			body = excluded.body,
			stored_at = excluded.stored_at`,
		resp.Key, resp.StatusCode, resp.ContentType, resp.Body, resp.StoredAt.Unix())
	if err != nil {
		return fmt.Errorf("storing cached response: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
