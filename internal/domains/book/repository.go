package book

import (
	"context"
)

// Repository defines the data access operations for books. All reads join
// the referenced author's name. Implementations report failures through the
// closed set in internal/shared/storage.
type Repository interface {
	// Create inserts a new book and returns the stored row with the
	// author name joined. Returns storage.ErrForeignKeyViolation when
	// author_id references no author.
	Create(ctx context.Context, params CreateBookParams) (*Book, error)

	// GetByID retrieves one book with the author name joined.
	// Returns storage.ErrNotFound if no row exists.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// GetAll retrieves every book with author names, ordered by id
	// descending.
	GetAll(ctx context.Context) ([]Book, error)

	// Update applies a sparse patch; omitted fields keep their stored
	// values. Returns storage.ErrNotFound or
	// storage.ErrForeignKeyViolation.
	Update(ctx context.Context, id int64, patch BookPatch) (*Book, error)

	// Delete removes the book. Returns storage.ErrNotFound if no row
	// exists.
	Delete(ctx context.Context, id int64) error
}
