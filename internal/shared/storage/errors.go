package storage

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Closed set of persistence failure kinds. Repository implementations map
// their driver's error codes onto these so that services never see a
// SQLSTATE. Anything a repository cannot classify is returned as-is and
// surfaces as an internal error.
var (
	ErrNotFound            = errors.New("row not found")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrUniqueViolation     = errors.New("unique violation")
)

// PostgreSQL SQLSTATE codes the repositories care about.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Classify maps a pgx error onto the closed failure set. The original error
// is returned untouched when it is not one of the recognized conditions.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ErrForeignKeyViolation
		case pgUniqueViolation:
			return ErrUniqueViolation
		}
	}
	return err
}
