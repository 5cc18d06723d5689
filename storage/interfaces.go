package storage

import (
	"context"

	"github.com/caralegal/cara/core"
)

// ActRepository provides operations for managing the reference dataset of
// legal acts. Implementations must be thread-safe and support concurrent
// access.
type ActRepository interface {
	// AddActs adds one or more acts to storage.
	// For acts with ID=0, derives a content-based ID from the title.
	// Sets InsertedAt timestamp if not already set.
	// Returns the acts with IDs and timestamps populated.
	AddActs(ctx context.Context, acts ...*core.Act) ([]*core.Act, error)

	// GetAct retrieves a single act by ID.
	// Returns ErrNotFound if the act doesn't exist.
	GetAct(ctx context.Context, id core.ID) (*core.Act, error)

	// FindActByTitle finds an act by its exact title.
	// Returns ErrNotFound if no matching act exists.
	FindActByTitle(ctx context.Context, title string) (*core.Act, error)

	// SearchActs finds acts whose title contains the query, case-insensitive,
	// up to limit results. Results are ordered by title.
	SearchActs(ctx context.Context, query string, limit int) ([]*core.Act, error)

	// GetAllActs retrieves every act in the dataset, ordered by title.
	GetAllActs(ctx context.Context) ([]*core.Act, error)

	// Count returns the number of acts in the dataset.
	Count(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
