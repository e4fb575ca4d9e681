// Package file provides a filesystem-backed state store. Payloads live as
// one JSON file per scoped key under a base directory, written atomically.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Store implements ports.StateStore using the local filesystem.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".parley/state".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".parley", "state")
	}
	return &Store{BasePath: basePath}
}

// path maps a scoped key to a file. Keys carry channel and conversation IDs
// verbatim, so they are escaped before use as a filename.
func (s *Store) path(scope ports.Scope, key string) string {
	return filepath.Join(s.BasePath, string(scope), url.PathEscape(key)+".json")
}

// Save persists the payload atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it
// to the destination.
func (s *Store) Save(ctx context.Context, scope ports.Scope, key string, payload json.RawMessage) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	dir := filepath.Join(s.BasePath, string(scope))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to ensure state directory: %w", err)
	}

	destPath := s.path(scope, key)

	// Same directory as the destination so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // Remove if still exists (not renamed)
	}()

	if _, err := tmpFile.Write(payload); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Load retrieves the payload for the scoped key.
func (s *Store) Load(ctx context.Context, scope ports.Scope, key string) (json.RawMessage, error) {
	if key == "" {
		return nil, fmt.Errorf("key cannot be empty")
	}

	data, err := os.ReadFile(s.path(scope, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	return data, nil
}

// Delete removes the file for the scoped key. Deleting a missing key is not
// an error.
func (s *Store) Delete(ctx context.Context, scope ports.Scope, key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	err := os.Remove(s.path(scope, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete state file: %w", err)
	}
	return nil
}
