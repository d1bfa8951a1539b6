// Package store is the local persisted key-value store backing the wallet,
// session, and credential registry. Each key maps to one JSON file under the
// store directory, mirroring a browser's namespaced localStorage entries.
// Keys carry a version suffix; a schema change means a new key, not a
// migration.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("key not found")

// FileStore persists one JSON document per key in a directory.
//
// Each logical key is owned by exactly one component (the session manager
// owns the session key, the credential store owns the registry key, the
// wallet store owns the wallet key); cross-component access goes through the
// owning component, never through this store directly. Concurrent processes
// sharing the directory are not coordinated: last writer wins.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the store directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the value stored under key into v. Returns ErrNotFound if the
// key is absent and a decode error if the stored data is corrupt.
func (s *FileStore) Get(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// Put stores v under key, replacing any previous value.
func (s *FileStore) Put(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Deleting an absent key is not
// an error.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Has reports whether key currently holds a value.
func (s *FileStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path(key))
	return err == nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
