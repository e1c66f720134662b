package book

import (
	"context"
)

// Service defines the business operations for the book domain.
type Service interface {
	// Create validates {title, author_id?} and inserts the book.
	// Errors: INVALID_INPUT "title is required" /
	// "author_id must be a number or null" /
	// "author_id does not reference an existing author".
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	// GetByID returns one book with the author name joined.
	// Errors: NOT_FOUND "Book not found".
	GetByID(ctx context.Context, id int64) (*Book, error)

	// GetAll returns all books with author names, newest id first.
	GetAll(ctx context.Context) ([]Book, error)

	// Update applies a sparse patch. Same INVALID_INPUT set as Create
	// plus "No fields to update"; NOT_FOUND "Book not found".
	Update(ctx context.Context, id int64, req *UpdateBookRequest) (*Book, error)

	// Delete removes the book. Errors: NOT_FOUND "Book not found".
	Delete(ctx context.Context, id int64) error
}
