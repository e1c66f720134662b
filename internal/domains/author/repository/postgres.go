package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"booklib-backend/internal/domains/author"
	"booklib-backend/internal/shared/storage"
)

// postgresRepository implements author.Repository on a pgx pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new author repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, params author.CreateAuthorParams) (*author.Author, error) {
	query := `
        INSERT INTO authors (name)
        VALUES ($1)
        RETURNING id, name, created_at
    `

	var created author.Author
	err := r.pool.QueryRow(ctx, query, params.Name).Scan(
		&created.ID,
		&created.Name,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", storage.Classify(err))
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `
        SELECT a.id, a.name, a.created_at, COUNT(b.id) AS book_count
        FROM authors a
        LEFT JOIN books b ON b.author_id = a.id
        WHERE a.id = $1
        GROUP BY a.id
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.CreatedAt,
		&a.BookCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get author by id: %w", storage.Classify(err))
	}

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT a.id, a.name, a.created_at, COUNT(b.id) AS book_count
        FROM authors a
        LEFT JOIN books b ON b.author_id = a.id
        GROUP BY a.id
        ORDER BY a.id DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", storage.Classify(err))
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.BookCount); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, patch author.AuthorPatch) (*author.Author, error) {
	// Build the SET clause from provided fields only; omitted fields keep
	// their stored values.
	var sets []string
	args := []interface{}{}
	argPos := 1

	if patch.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *patch.Name)
		argPos++
	}

	query := fmt.Sprintf(`
        UPDATE authors
        SET %s
        WHERE id = $%d
        RETURNING id, name, created_at
    `, strings.Join(sets, ", "), argPos)
	args = append(args, id)

	var updated author.Author
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&updated.ID,
		&updated.Name,
		&updated.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", storage.Classify(err))
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", storage.Classify(err))
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
