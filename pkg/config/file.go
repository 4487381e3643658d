package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore persists each namespace as <dir>/<name>.yaml.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on the
// first Save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the root directory.
func (s *FileStore) Dir() string { return s.dir }

// Get loads the namespace from disk. A missing file yields an empty Config.
func (s *FileStore) Get(ctx context.Context, name string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return newConfig(name, nil, s), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", name, err)
	}

	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("config: decode %q: %w", name, err)
	}
	return newConfig(name, values, s), nil
}

func (s *FileStore) persist(_ context.Context, name string, data map[string]any) error {
	payload, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("config: encode %q: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("config: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("config: write %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: close %q: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return fmt.Errorf("config: replace %q: %w", name, err)
	}
	return nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}
