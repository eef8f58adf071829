package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ArtifactStore writes named JSON documents into a single output directory,
// creating the directory on first use.
type ArtifactStore struct {
	dir string
}

func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

// WriteJSON marshals payload with indentation and writes it to name inside
// the store directory, returning the full path of the written file.
func (s *ArtifactStore) WriteJSON(name string, payload interface{}) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

// WriteError marks an artifact that could not be persisted for a table whose
// data was otherwise produced successfully.
type WriteError struct {
	Table string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write artifact for table %s: %v", e.Table, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
