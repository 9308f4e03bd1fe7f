package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// document is the on-disk layout of a FileStore: a single JSON file
// holding every logical key.
type document struct {
	Version int                        `json:"version"`
	Data    map[string]json.RawMessage `json:"data"`
}

// FileStore keeps all keys in one JSON document on disk.
type FileStore struct {
	path string
	doc  *document
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: SchemaVersion,
		Data:    make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *FileStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'fupan init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		// A corrupt data file degrades to first-use state rather than
		// blocking the application.
		warnf("data file %s is unreadable, starting empty: %v", s.path, err)
		s.doc = &document{Version: SchemaVersion}
	}

	if s.doc.Data == nil {
		s.doc.Data = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *FileStore) Get(key string) ([]byte, bool) {
	if s.doc == nil {
		return nil, false
	}
	raw, ok := s.doc.Data[key]
	if !ok {
		return nil, false
	}
	return raw, true
}

func (s *FileStore) Set(key string, value any) {
	if s.doc == nil {
		warnf("dropping write to %q: storage not loaded", key)
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		warnf("dropping write to %q: %v", key, err)
		return
	}

	s.doc.Data[key] = raw
	if err := s.save(); err != nil {
		warnf("dropping write to %q: %v", key, err)
	}
}

func (s *FileStore) Remove(key string) {
	if s.doc == nil {
		return
	}
	delete(s.doc.Data, key)
	if err := s.save(); err != nil {
		warnf("failed to remove %q: %v", key, err)
	}
}

func (s *FileStore) Clear() {
	if s.doc == nil {
		return
	}
	s.doc.Data = make(map[string]json.RawMessage)
	if err := s.save(); err != nil {
		warnf("failed to clear storage: %v", err)
	}
}

func (s *FileStore) Path() string {
	return s.path
}
