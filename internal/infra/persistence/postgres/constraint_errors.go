package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL error code for unique_violation.
const pgUniqueViolationCode = "23505"

// isUniqueConstraintViolation reports whether err is a rejected insert on a
// unique column. Checks both GORM's translated error and the raw pgconn
// error, since translation depends on how the session was opened.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}

	return false
}
