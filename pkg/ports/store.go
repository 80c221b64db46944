package ports

import (
	"context"

	"github.com/aretw0/rapport/pkg/domain"
)

// PersonStore defines the interface for persisting people between calls.
type PersonStore interface {
	// Save persists the snapshot for a given person ID.
	Save(ctx context.Context, personID string, snap domain.Snapshot) error

	// Load retrieves the snapshot for a given person ID.
	// Returns domain.ErrPersonNotFound if the person does not exist.
	Load(ctx context.Context, personID string) (domain.Snapshot, error)

	// Delete removes the snapshot for a given person ID.
	Delete(ctx context.Context, personID string) error

	// List returns the IDs of all stored people.
	List(ctx context.Context) ([]string, error)
}
