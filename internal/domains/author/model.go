package author

import (
	"time"
)

// Author represents the core Author entity.
// This is the domain model, independent of database/API concerns.
type Author struct {
	// Identity - serial integer assigned by the database
	ID int64 `json:"id" db:"id"`

	Name string `json:"name" db:"name"` // Required, never empty or whitespace-only in storage

	// Audit timestamp
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Derived: number of books referencing this author. Populated on
	// list/read-one, zero-valued elsewhere.
	BookCount int64 `json:"book_count" db:"book_count"`
}
