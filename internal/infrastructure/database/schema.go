package database

import (
	"context"
	"fmt"
)

// Deleting an author must not delete their books; the reference is cleared
// instead (on delete set null).
var schemaStatements = []string{
	`create table if not exists authors (
		id serial primary key,
		name text not null,
		created_at timestamptz not null default now()
	)`,
	`create table if not exists books (
		id serial primary key,
		title text not null,
		author_id integer references authors(id) on delete set null,
		created_at timestamptz not null default now()
	)`,
}

// EnsureSchema creates the tables if they do not exist yet. Idempotent, runs
// at startup.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
