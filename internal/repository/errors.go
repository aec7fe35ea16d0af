package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means no row matched the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint means the store rejected a write because of a foreign
	// key, unique, not-null or check constraint.
	ErrConstraint = errors.New("constraint violation")

	// ErrReferentialConflict means a delete was blocked by a row that still
	// references the record, typically one owned by another system.
	ErrReferentialConflict = errors.New("record is still referenced")
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgForeignKeyViolation = "23503"
	pgIntegrityClass      = "23"
)

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, pgIntegrityClass)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// ConstraintName returns the name of the violated constraint when the
// driver reports one.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// classifyWrite tags integrity failures with ErrConstraint and leaves the
// driver error in the chain for logging.
func classifyWrite(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConstraint) || errors.Is(err, ErrReferentialConflict) {
		return err
	}
	if isConstraintViolation(err) {
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	}
	return err
}
