package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/rapport/pkg/domain"
)

// ErrInvalidID is returned for IDs that cannot be used as a file name.
var ErrInvalidID = domain.ErrInvalidPersonID

// Store implements ports.PersonStore using the local filesystem.
// Each person is one JSON file in BasePath.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".rapport/people".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".rapport", "people")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(personID string) (string, error) {
	if personID == "" || strings.ContainsAny(personID, `/\`) || personID == "." || personID == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, personID)
	}
	return filepath.Join(s.BasePath, personID+".json"), nil
}

// Save writes the snapshot atomically: temp file, fsync, rename.
func (s *Store) Save(ctx context.Context, personID string, snap domain.Snapshot) error {
	destPath, err := s.path(personID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure store directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// Same directory as the destination so the rename stays on one filesystem.
	// The .tmp suffix keeps in-flight files out of List for every ID.
	tmpFile, err := os.CreateTemp(s.BasePath, "."+personID+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load retrieves the snapshot from its JSON file.
func (s *Store) Load(ctx context.Context, personID string) (domain.Snapshot, error) {
	filePath, err := s.path(personID)
	if err != nil {
		return domain.Snapshot{}, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Snapshot{}, domain.ErrPersonNotFound
		}
		return domain.Snapshot{}, fmt.Errorf("failed to read person file: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snap, nil
}

// Delete removes the person file. Deleting a missing person is not an error.
func (s *Store) Delete(ctx context.Context, personID string) error {
	filePath, err := s.path(personID)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete person file: %w", err)
	}
	return nil
}

// List returns the IDs of all stored people.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}
