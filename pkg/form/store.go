package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Storage keys. Both values are plain JSON blobs with no versioning;
// the latest write wins.
const (
	SavedInfoKey = "saved_contact_info"
	DraftKey     = "contact_form_draft"
)

// Store is a small key/value persistence layer for client state,
// the terminal equivalent of browser localStorage.
type Store interface {
	// Get unmarshals the value for key into v. ok is false when the key
	// does not exist.
	Get(key string, v any) (ok bool, err error)
	Set(key string, v any) error
	Delete(key string) error
}

// FileStore keeps one JSON file per key under a state directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the state directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("form: state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("form: read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("form: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *FileStore) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("form: encode %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("form: write %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("form: delete %s: %w", key, err)
	}
	return nil
}
