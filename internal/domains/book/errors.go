package book

import "booklib-backend/internal/shared/apperror"

var (
	// ErrNotFound carries the exact wire message for a missing book.
	ErrNotFound = apperror.NotFound("Book not found")

	// ErrAuthorRef is the client-facing translation of a foreign key
	// violation on books.author_id.
	ErrAuthorRef = apperror.InvalidInput("author_id does not reference an existing author")
)
