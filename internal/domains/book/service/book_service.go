package service

import (
	"context"
	"errors"

	"booklib-backend/internal/domains/book"
	"booklib-backend/internal/shared/apperror"
	"booklib-backend/internal/shared/storage"
)

// bookService implements book.Service.
type bookService struct {
	repo book.Repository
}

// NewBookService creates a new book service instance.
func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	params, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, s.mapStorageErr(err)
	}
	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapStorageErr(err)
	}
	return b, nil
}

func (s *bookService) GetAll(ctx context.Context) ([]book.Book, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return books, nil
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.UpdateBookRequest) (*book.Book, error) {
	patch, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.mapStorageErr(err)
	}
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapStorageErr(err)
	}
	return nil
}

// mapStorageErr applies the foreign-key rejection mapping around the
// repository: a foreign key violation means the supplied author_id
// references nothing; a missing row is a 404; the rest is internal.
func (s *bookService) mapStorageErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return book.ErrAuthorRef
	case errors.Is(err, storage.ErrNotFound):
		return book.ErrNotFound
	default:
		return apperror.Internal(err)
	}
}
