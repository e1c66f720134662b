package service

import (
	"context"
	"errors"

	"booklib-backend/internal/domains/author"
	"booklib-backend/internal/shared/apperror"
	"booklib-backend/internal/shared/storage"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

// NewAuthorService creates a new author service instance.
// The service depends on the Repository abstraction, not a concrete type,
// so tests can inject a fake.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
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

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapStorageErr(err)
	}
	return a, nil
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	authors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return authors, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
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

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapStorageErr(err)
	}
	return nil
}

// mapStorageErr reclassifies repository failures into the API taxonomy.
// Anything unrecognized becomes an opaque internal error carrying the
// underlying message.
func (s *authorService) mapStorageErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return author.ErrNotFound
	}
	return apperror.Internal(err)
}
