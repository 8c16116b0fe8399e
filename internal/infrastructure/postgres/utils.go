package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código de PostgreSQL para violación de constraint único; lo mapean los
// adaptadores a ErrDuplicate / ErrEmailAlreadyExists según la tabla.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// Algunos drivers envuelven el error sin conservar el tipo pgconn.
	return err != nil && strings.Contains(err.Error(), pgUniqueViolation)
}
