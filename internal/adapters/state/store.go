// Package state persists per-step configure fingerprints between
// invocations in a flat JSON file at the repo root. cmake refuses to reuse
// a build dir whose cache was produced by a different generator, so the
// runner compares fingerprints to know when the cache must be purged.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/zerr"
)

// DefaultFilename is the store file created at the repo root.
const DefaultFilename = ".cubuild-state.json"

// Store implements ports.StampStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]string
}

// NewStore creates a Store backed by the file at the given path. A missing
// or unreadable file starts the store empty rather than failing: losing the
// stamps only costs one extra cache purge.
func NewStore(path string) *Store {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]string),
	}
	s.load()
	return s
}

func (s *Store) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path is cleaned and rooted at the user's checkout
	data, err := os.ReadFile(s.path)
	if err != nil || len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, &s.cache); err != nil {
		s.cache = make(map[string]string)
	}
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal stamp store")
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil { //nolint:gosec // state file, not a secret
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to write stamp store")
	}
	return nil
}

// Get returns the last recorded fingerprint for a step.
func (s *Store) Get(step string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fp, ok := s.cache[step]
	return fp, ok
}

// Put records the fingerprint for a step and persists the store.
func (s *Store) Put(step, fingerprint string) error {
	s.mu.Lock()
	s.cache[step] = fingerprint
	s.mu.Unlock()

	return s.save()
}
