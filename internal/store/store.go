// Package store persists small integer values (the best score) between runs.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// MemStore is an in-memory store. The zero value is ready to use.
type MemStore struct {
	mu     sync.Mutex
	values map[string]int
}

func (m *MemStore) Get(key string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemStore) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]int)
	}
	m.values[key] = value
	return nil
}

// fileRecord is the on-disk layout.
type fileRecord struct {
	Version int            `msgpack:"v"`
	Values  map[string]int `msgpack:"values"`
}

const fileVersion = 1

// FileStore keeps all values in one msgpack file, rewritten on every Set.
type FileStore struct {
	path string

	mu     sync.Mutex
	values map[string]int
}

// OpenFile loads the store at path. A missing file is an empty store. A
// corrupt file is also treated as empty; the decode error is returned
// alongside the usable store so the caller can log it.
func OpenFile(path string) (*FileStore, error) {
	fsStore := &FileStore{path: path, values: make(map[string]int)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fsStore, nil
	}
	if err != nil {
		return fsStore, fmt.Errorf("read %s: %w", path, err)
	}

	var rec fileRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return fsStore, fmt.Errorf("decode %s: %w", path, err)
	}
	for k, v := range rec.Values {
		fsStore.values[k] = v
	}
	return fsStore, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(key string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set updates key and rewrites the file through a temp file and rename. On
// failure the in-memory value is kept.
func (s *FileStore) Set(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value

	data, err := msgpack.Marshal(&fileRecord{Version: fileVersion, Values: s.values})
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
