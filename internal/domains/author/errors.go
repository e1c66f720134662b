package author

import "booklib-backend/internal/shared/apperror"

var (
	// ErrNotFound carries the exact wire message for a missing author.
	ErrNotFound = apperror.NotFound("Author not found")
)
