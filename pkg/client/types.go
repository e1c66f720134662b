package client

import "time"

// Author is the wire projection returned by the API. book_count is present
// on list and read-one responses only.
type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	BookCount *int64    `json:"book_count,omitempty"`
}

// Book is the wire projection returned by the API. author_id and author are
// null for unauthored books.
type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	AuthorID  *int64    `json:"author_id"`
	Author    *string   `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorPatch is a sparse update payload; nil fields are omitted from the
// request body.
type AuthorPatch struct {
	Name *string
}

// BookPatch is a sparse update payload. SetAuthor distinguishes "detach the
// author" (true with nil AuthorID, sent as JSON null) from leaving the
// reference alone (false).
type BookPatch struct {
	Title     *string
	SetAuthor bool
	AuthorID  *int64
}

// APIError is a non-2xx response decoded from the {"error": ...} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }
