package kv

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps every logical key as a row in a single kv table.
// The schema version lives in PRAGMA user_version.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.bootstrap(); err != nil {
		return err
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'fupan init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	version, err := s.UserVersion()
	if err != nil {
		return err
	}
	if version > SchemaVersion {
		return fmt.Errorf("data file schema version (%d) is newer than supported version (%d)", version, SchemaVersion)
	}

	// A pre-versioning or partially written file gets the current schema.
	return s.bootstrap()
}

func (s *SQLiteStore) bootstrap() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}

	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) Get(key string) ([]byte, bool) {
	if s.db == nil {
		return nil, false
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			warnf("failed to read %q: %v", key, err)
		}
		return nil, false
	}

	return []byte(value), true
}

func (s *SQLiteStore) Set(key string, value any) {
	if s.db == nil {
		warnf("dropping write to %q: storage not loaded", key)
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		warnf("dropping write to %q: %v", key, err)
		return
	}

	_, err = s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw))
	if err != nil {
		warnf("dropping write to %q: %v", key, err)
	}
}

func (s *SQLiteStore) Remove(key string) {
	if s.db == nil {
		return
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		warnf("failed to remove %q: %v", key, err)
	}
}

func (s *SQLiteStore) Clear() {
	if s.db == nil {
		return
	}
	if _, err := s.db.Exec("DELETE FROM kv"); err != nil {
		warnf("failed to clear storage: %v", err)
	}
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// DB exposes the underlying connection for health checks.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// UserVersion reads the schema version recorded in the data file.
func (s *SQLiteStore) UserVersion() (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("storage not loaded")
	}
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
