package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// IsForeignKeyViolation reports whether err is a 23503 restrict error,
// i.e. a delete blocked by referencing rows.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// IsUniqueViolation reports whether err is a 23505 on the named
// constraint; with an empty name any unique violation matches.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
