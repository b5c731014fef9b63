package partid

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
)

// Store persists the user overlay of a Dictionary.
type Store interface {
	Load() (map[string]Entry, error)
	Save(entries map[string]Entry) error
	Clear() error
}

// FileStore keeps the overlay as an indented JSON file.
type FileStore struct {
	Path string
}

// DefaultStorePath returns the overlay location under the XDG data home.
func DefaultStorePath() (string, error) {
	path, err := xdg.DataFile(filepath.Join("partid", "overlay.json"))
	if err != nil {
		return "", fmt.Errorf("failed to get data directory: %w", err)
	}
	return path, nil
}

// NewFileStore returns a FileStore at path, or at DefaultStorePath when path is empty.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		var err error
		if path, err = DefaultStorePath(); err != nil {
			return nil, err
		}
	}
	return &FileStore{Path: path}, nil
}

// Load returns an empty overlay when the file does not exist yet.
func (s *FileStore) Load() (map[string]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	entries, err := decodeEntries(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return entries, nil
}

func (s *FileStore) Save(entries map[string]Entry) error {
	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(s.Path), err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.Path)
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", s.Path, err)
	}
	return nil
}

// MemoryStore keeps the overlay in process memory. Saves are deep copies.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
	Saves   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]Entry{}}
}

func (s *MemoryStore) Load() (map[string]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyEntries(s.entries), nil
}

func (s *MemoryStore) Save(entries map[string]Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = copyEntries(entries)
	s.Saves++
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[string]Entry{}
	return nil
}

// Snapshot returns the persisted overlay, for inspection in tests and tools.
func (s *MemoryStore) Snapshot() map[string]Entry {
	entries, _ := s.Load()
	return entries
}

func copyEntries(in map[string]Entry) map[string]Entry {
	out := make(map[string]Entry, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
