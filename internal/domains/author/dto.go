package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"booklib-backend/internal/shared"
	"booklib-backend/internal/shared/apperror"
	"booklib-backend/internal/shared/validate"
)

// CreateAuthorRequest - POST /api/authors
// Fields are untyped: the body is an untrusted bag and the type checks are
// part of validation, with the exact client-facing messages.
type CreateAuthorRequest struct {
	Name interface{} `json:"name"`
}

// CreateAuthorParams is the normalized persistence argument produced from a
// valid create request.
type CreateAuthorParams struct {
	Name string
}

// Normalize validates the request and returns the persistence arguments.
func (r *CreateAuthorRequest) Normalize() (CreateAuthorParams, error) {
	if err := validation.Validate(r.Name, validate.NonEmptyString); err != nil {
		return CreateAuthorParams{}, apperror.InvalidInput("name is required")
	}
	return CreateAuthorParams{Name: validate.TrimmedString(r.Name)}, nil
}

// UpdateAuthorRequest - PUT /api/authors/:id
// Sparse patch: only keys present in the body participate in the update.
type UpdateAuthorRequest struct {
	Name shared.Field `json:"name"`
}

// AuthorPatch carries only the fields the caller supplied, normalized.
type AuthorPatch struct {
	Name *string
}

// IsEmpty reports whether the patch would change nothing.
func (p AuthorPatch) IsEmpty() bool {
	return p.Name == nil
}

// Normalize validates the sparse patch. A request with no recognized field
// is rejected before any persistence call.
func (r *UpdateAuthorRequest) Normalize() (AuthorPatch, error) {
	var patch AuthorPatch

	if r.Name.Set {
		if err := validation.Validate(r.Name.Value, validate.NonEmptyString); err != nil {
			return patch, apperror.InvalidInput("name must be a non-empty string")
		}
		name := validate.TrimmedString(r.Name.Value)
		patch.Name = &name
	}

	if patch.IsEmpty() {
		return patch, apperror.InvalidInput("No fields to update")
	}

	return patch, nil
}

// AuthorResponse is the wire projection (snake_case). book_count appears
// only on list and read-one responses.
type AuthorResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	BookCount *int64    `json:"book_count,omitempty"`
}

// ToResponse converts the entity to its projection without book_count
// (create/update responses).
func (a Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

// ToDetailResponse includes the derived book_count (list/read-one).
func (a Author) ToDetailResponse() *AuthorResponse {
	resp := a.ToResponse()
	count := a.BookCount
	resp.BookCount = &count
	return resp
}
