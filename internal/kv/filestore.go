package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore is a Store that keeps one JSON file per key in a directory.
// Writes are atomic (write-to-temp-then-rename). Keys are sanitized to a
// safe file name; distinct keys never collide because only the separator
// characters are rewritten.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the backing directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Get reads the value stored for key.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes value under key using write-to-temp-then-rename.
func (s *FileStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	path := s.path(key)
	tmp, err := os.CreateTemp(s.dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Delete removes the file for key. Missing files are ignored.
func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// path maps a key to its file. Key separators (":", "/", "@") become "_"
// so per-user keys like "timeline_events:dev@example.com" stay flat.
func (s *FileStore) path(key string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '/', '\\', '@':
			return '_'
		}
		return r
	}, key)
	return filepath.Join(s.dir, name+".json")
}
