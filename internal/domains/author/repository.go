package author

import (
	"context"
)

// Repository defines the data access operations for authors.
// Implementations report failures through the closed set in
// internal/shared/storage so the service never sees driver error codes.
type Repository interface {
	// Create inserts a new author and returns the stored row
	// (id, trimmed name, created_at).
	Create(ctx context.Context, params CreateAuthorParams) (*Author, error)

	// GetByID retrieves one author with the derived book count.
	// Returns storage.ErrNotFound if no row exists.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetAll retrieves every author with book counts, ordered by id
	// descending.
	GetAll(ctx context.Context) ([]Author, error)

	// Update applies a sparse patch; omitted fields keep their stored
	// values. Returns storage.ErrNotFound if no row exists.
	Update(ctx context.Context, id int64, patch AuthorPatch) (*Author, error)

	// Delete removes the author. Referencing books get author_id set to
	// null by the schema, not cascaded. Returns storage.ErrNotFound if no
	// row exists.
	Delete(ctx context.Context, id int64) error
}
