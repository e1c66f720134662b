package book

import (
	"time"
)

// Book represents the core Book entity.
type Book struct {
	// Identity - serial integer assigned by the database
	ID int64 `json:"id" db:"id"`

	Title string `json:"title" db:"title"` // Required, never empty or whitespace-only in storage

	// Optional reference to an author. Nil means the book is unauthored.
	AuthorID *int64 `json:"author_id" db:"author_id"`

	// Derived: the referenced author's name, nil when unauthored.
	AuthorName *string `json:"author" db:"author"`

	// Audit timestamp
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
