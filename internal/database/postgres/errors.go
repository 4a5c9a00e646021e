package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/echoscript/EchoScript_Go/internal/domain"
)

// SQLSTATE codes this package distinguishes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidTextRepr     = "22P02"
)

// storeError wraps a query or exec failure with the matching domain error.
// Client-caused failures (a foreign key pointing at a missing row, or input
// that cannot be parsed as the column type, such as a malformed UUID) map to
// ErrInvalidInput; retrying those can never succeed. Everything else is a
// store-side failure.
func storeError(action string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgInvalidTextRepr:
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, action, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, action, err)
}

// conflictError translates a unique violation into the matching domain
// conflict error, or returns nil if err is not a unique violation.
func conflictError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return domain.ErrUsernameTaken
	case strings.Contains(pgErr.ConstraintName, "email"):
		return domain.ErrEmailTaken
	default:
		return domain.ErrInvalidInput
	}
}
