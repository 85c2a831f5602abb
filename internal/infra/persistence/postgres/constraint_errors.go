package postgres

import (
	"courseadmin/internal/domain/repository"
	"courseadmin/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgForeignKeyViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCheckViolation
}

// translateWriteError maps constraint violations onto repository sentinels and
// wraps everything else with op.
func translateWriteError(err error, op string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrDuplicate, op)
	case isForeignKeyConstraintViolation(err), isCheckConstraintViolation(err):
		return errors.Wrapf(err, "%s: constraint violated", op)
	default:
		return errors.Wrap(err, op)
	}
}

// translateReadError maps gorm.ErrRecordNotFound onto repository.ErrNotFound.
func translateReadError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}

	return errors.Wrap(err, op)
}
