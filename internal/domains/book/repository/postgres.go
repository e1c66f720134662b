package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"booklib-backend/internal/domains/book"
	"booklib-backend/internal/shared/storage"
)

// postgresRepository implements book.Repository on a pgx pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new book repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, params book.CreateBookParams) (*book.Book, error) {
	// Insert and join the author name in one round trip.
	query := `
        WITH inserted AS (
            INSERT INTO books (title, author_id)
            VALUES ($1, $2)
            RETURNING id, title, author_id, created_at
        )
        SELECT i.id, i.title, i.author_id, a.name, i.created_at
        FROM inserted i
        LEFT JOIN authors a ON a.id = i.author_id
    `

	var created book.Book
	err := r.pool.QueryRow(ctx, query, params.Title, params.AuthorID).Scan(
		&created.ID,
		&created.Title,
		&created.AuthorID,
		&created.AuthorName,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", storage.Classify(err))
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	query := `
        SELECT b.id, b.title, b.author_id, a.name, b.created_at
        FROM books b
        LEFT JOIN authors a ON a.id = b.author_id
        WHERE b.id = $1
    `

	var b book.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.AuthorID,
		&b.AuthorName,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get book by id: %w", storage.Classify(err))
	}

	return &b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	query := `
        SELECT b.id, b.title, b.author_id, a.name, b.created_at
        FROM books b
        LEFT JOIN authors a ON a.id = b.author_id
        ORDER BY b.id DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", storage.Classify(err))
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.AuthorName, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, patch book.BookPatch) (*book.Book, error) {
	var sets []string
	args := []interface{}{}
	argPos := 1

	if patch.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *patch.Title)
		argPos++
	}
	if patch.AuthorIDSet {
		sets = append(sets, fmt.Sprintf("author_id = $%d", argPos))
		args = append(args, patch.AuthorID)
		argPos++
	}

	query := fmt.Sprintf(`
        WITH updated AS (
            UPDATE books
            SET %s
            WHERE id = $%d
            RETURNING id, title, author_id, created_at
        )
        SELECT u.id, u.title, u.author_id, a.name, u.created_at
        FROM updated u
        LEFT JOIN authors a ON a.id = u.author_id
    `, strings.Join(sets, ", "), argPos)
	args = append(args, id)

	var updated book.Book
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&updated.ID,
		&updated.Title,
		&updated.AuthorID,
		&updated.AuthorName,
		&updated.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", storage.Classify(err))
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", storage.Classify(err))
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
