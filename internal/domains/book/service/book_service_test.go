package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booklib-backend/internal/domains/book"
	"booklib-backend/internal/shared/apperror"
	"booklib-backend/internal/shared/storage"
)

// fakeBookRepo implements book.Repository with injectable behavior.
type fakeBookRepo struct {
	createFn  func(ctx context.Context, params book.CreateBookParams) (*book.Book, error)
	getByIDFn func(ctx context.Context, id int64) (*book.Book, error)
	getAllFn  func(ctx context.Context) ([]book.Book, error)
	updateFn  func(ctx context.Context, id int64, patch book.BookPatch) (*book.Book, error)
	deleteFn  func(ctx context.Context, id int64) error

	calls int
}

func (f *fakeBookRepo) Create(ctx context.Context, params book.CreateBookParams) (*book.Book, error) {
	f.calls++
	return f.createFn(ctx, params)
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	f.calls++
	return f.getByIDFn(ctx, id)
}

func (f *fakeBookRepo) GetAll(ctx context.Context) ([]book.Book, error) {
	f.calls++
	return f.getAllFn(ctx)
}

func (f *fakeBookRepo) Update(ctx context.Context, id int64, patch book.BookPatch) (*book.Book, error) {
	f.calls++
	return f.updateFn(ctx, id, patch)
}

func (f *fakeBookRepo) Delete(ctx context.Context, id int64) error {
	f.calls++
	return f.deleteFn(ctx, id)
}

func createReq(t *testing.T, body string) *book.CreateBookRequest {
	t.Helper()
	var req book.CreateBookRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func updateReq(t *testing.T, body string) *book.UpdateBookRequest {
	t.Helper()
	var req book.UpdateBookRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestBookServiceCreate(t *testing.T) {
	t.Run("passes normalized params to repository", func(t *testing.T) {
		repo := &fakeBookRepo{
			createFn: func(_ context.Context, params book.CreateBookParams) (*book.Book, error) {
				assert.Equal(t, "Emma", params.Title)
				require.NotNil(t, params.AuthorID)
				assert.Equal(t, int64(3), *params.AuthorID)
				return &book.Book{ID: 1, Title: params.Title, AuthorID: params.AuthorID}, nil
			},
		}
		svc := NewBookService(repo)

		created, err := svc.Create(context.Background(), createReq(t, `{"title":" Emma ","author_id":"3"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("rejects missing title without touching repository", func(t *testing.T) {
		repo := &fakeBookRepo{}
		svc := NewBookService(repo)

		_, err := svc.Create(context.Background(), createReq(t, `{"author_id":3}`))
		require.Error(t, err)
		assert.Equal(t, "title is required", err.Error())
		assert.Equal(t, 0, repo.calls)
	})

	t.Run("dangling author reference maps to invalid input", func(t *testing.T) {
		repo := &fakeBookRepo{
			createFn: func(_ context.Context, _ book.CreateBookParams) (*book.Book, error) {
				return nil, storage.ErrForeignKeyViolation
			},
		}
		svc := NewBookService(repo)

		_, err := svc.Create(context.Background(), createReq(t, `{"title":"Emma","author_id":999}`))
		require.Error(t, err)
		assert.Equal(t, "author_id does not reference an existing author", err.Error())
		assert.Equal(t, 400, apperror.HTTPStatus(err))
	})
}

func TestBookServiceUpdate(t *testing.T) {
	t.Run("detach author passes set nil through", func(t *testing.T) {
		repo := &fakeBookRepo{
			updateFn: func(_ context.Context, _ int64, patch book.BookPatch) (*book.Book, error) {
				assert.True(t, patch.AuthorIDSet)
				assert.Nil(t, patch.AuthorID)
				return &book.Book{ID: 1, Title: "Emma"}, nil
			},
		}
		svc := NewBookService(repo)

		updated, err := svc.Update(context.Background(), 1, updateReq(t, `{"author_id":null}`))
		require.NoError(t, err)
		assert.Nil(t, updated.AuthorID)
	})

	t.Run("dangling author reference maps to invalid input", func(t *testing.T) {
		repo := &fakeBookRepo{
			updateFn: func(_ context.Context, _ int64, _ book.BookPatch) (*book.Book, error) {
				return nil, storage.ErrForeignKeyViolation
			},
		}
		svc := NewBookService(repo)

		_, err := svc.Update(context.Background(), 1, updateReq(t, `{"author_id":999}`))
		require.Error(t, err)
		assert.Equal(t, "author_id does not reference an existing author", err.Error())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo := &fakeBookRepo{
			updateFn: func(_ context.Context, _ int64, _ book.BookPatch) (*book.Book, error) {
				return nil, storage.ErrNotFound
			},
		}
		svc := NewBookService(repo)

		_, err := svc.Update(context.Background(), 99, updateReq(t, `{"title":"x"}`))
		require.Error(t, err)
		assert.Equal(t, "Book not found", err.Error())
		assert.Equal(t, 404, apperror.HTTPStatus(err))
	})

	t.Run("empty patch rejected without touching repository", func(t *testing.T) {
		repo := &fakeBookRepo{}
		svc := NewBookService(repo)

		_, err := svc.Update(context.Background(), 1, updateReq(t, `{}`))
		require.Error(t, err)
		assert.Equal(t, "No fields to update", err.Error())
		assert.Equal(t, 0, repo.calls)
	})
}

func TestBookServiceDelete(t *testing.T) {
	repo := &fakeBookRepo{
		deleteFn: func(_ context.Context, _ int64) error {
			return storage.ErrNotFound
		},
	}
	svc := NewBookService(repo)

	err := svc.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, "Book not found", err.Error())
	assert.Equal(t, 404, apperror.HTTPStatus(err))
}
