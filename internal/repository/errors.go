package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation    = "23505"
	PgErrInvalidPassword    = "28P01"
	PgErrInvalidCatalogName = "3D000"
)

// IsPgErrorWithCode сообщает, что где-то в цепочке err лежит ошибка Postgres с данным SQLSTATE.
func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
