package book

import (
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"booklib-backend/internal/shared"
	"booklib-backend/internal/shared/apperror"
	"booklib-backend/internal/shared/validate"
)

// coerceAuthorID applies the author-reference coercion rule:
// absent/null/"" mean "no author" (never zero); everything else goes through
// string-to-number conversion and is rejected only when the result is not a
// number. "0", "007" and padded numerics are therefore accepted.
func coerceAuthorID(value interface{}) (*int64, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case float64:
		id := int64(v)
		return &id, nil
	case int:
		id := int64(v)
		return &id, nil
	case int64:
		return &v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			// blank-but-not-empty strings coerce to zero
			id := int64(0)
			return &id, nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, apperror.InvalidInput("author_id must be a number or null")
		}
		id := int64(f)
		return &id, nil
	default:
		return nil, apperror.InvalidInput("author_id must be a number or null")
	}
}

// CreateBookRequest - POST /api/books
// Untyped field bag; type checks are part of validation.
type CreateBookRequest struct {
	Title    interface{} `json:"title"`
	AuthorID interface{} `json:"author_id"`
}

// CreateBookParams is the normalized persistence argument set.
type CreateBookParams struct {
	Title    string
	AuthorID *int64
}

// Normalize validates the request and returns the persistence arguments.
func (r *CreateBookRequest) Normalize() (CreateBookParams, error) {
	if err := validation.Validate(r.Title, validate.NonEmptyString); err != nil {
		return CreateBookParams{}, apperror.InvalidInput("title is required")
	}

	authorID, err := coerceAuthorID(r.AuthorID)
	if err != nil {
		return CreateBookParams{}, err
	}

	return CreateBookParams{
		Title:    validate.TrimmedString(r.Title),
		AuthorID: authorID,
	}, nil
}

// UpdateBookRequest - PUT /api/books/:id
// Sparse patch: only keys present in the body participate.
type UpdateBookRequest struct {
	Title    shared.Field `json:"title"`
	AuthorID shared.Field `json:"author_id"`
}

// BookPatch carries only the supplied fields. AuthorIDSet distinguishes
// "detach the author" (set, nil value) from "leave the reference alone".
type BookPatch struct {
	Title       *string
	AuthorIDSet bool
	AuthorID    *int64
}

// IsEmpty reports whether the patch would change nothing.
func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && !p.AuthorIDSet
}

// Normalize validates the sparse patch before any persistence call.
func (r *UpdateBookRequest) Normalize() (BookPatch, error) {
	var patch BookPatch

	if r.Title.Set {
		if err := validation.Validate(r.Title.Value, validate.NonEmptyString); err != nil {
			return patch, apperror.InvalidInput("title must be a non-empty string")
		}
		title := validate.TrimmedString(r.Title.Value)
		patch.Title = &title
	}

	if r.AuthorID.Set {
		authorID, err := coerceAuthorID(r.AuthorID.Value)
		if err != nil {
			return patch, err
		}
		patch.AuthorIDSet = true
		patch.AuthorID = authorID
	}

	if patch.IsEmpty() {
		return patch, apperror.InvalidInput("No fields to update")
	}

	return patch, nil
}

// BookResponse is the wire projection (snake_case). author_id and author are
// explicit nulls for unauthored books, never omitted.
type BookResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	AuthorID  *int64    `json:"author_id"`
	Author    *string   `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts the entity to its projection.
func (b Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		AuthorID:  b.AuthorID,
		Author:    b.AuthorName,
		CreatedAt: b.CreatedAt,
	}
}
