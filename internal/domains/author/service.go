package author

import (
	"context"
)

// Service defines the business operations for the author domain.
// Validation happens before any repository call; repository failures are
// reclassified into the API error taxonomy on the way out.
type Service interface {
	// Create validates {name} and inserts the author.
	// Errors: INVALID_INPUT "name is required".
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID returns one author with book_count.
	// Errors: NOT_FOUND "Author not found".
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetAll returns all authors with book counts, newest id first.
	GetAll(ctx context.Context) ([]Author, error)

	// Update applies a sparse patch.
	// Errors: INVALID_INPUT "name must be a non-empty string" /
	// "No fields to update"; NOT_FOUND "Author not found".
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes the author; books referencing it are detached, not
	// deleted. Errors: NOT_FOUND "Author not found".
	Delete(ctx context.Context, id int64) error
}
