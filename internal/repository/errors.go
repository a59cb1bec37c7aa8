package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode = "23505"
	invalidTextRepCode  = "22P02"
)

// IsUniqueViolation reporta si err es una violación de constraint UNIQUE.
// Con constraint vacío, cualquier constraint coincide.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != uniqueViolationCode {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// IsMalformedID reporta si err proviene de un parámetro que Postgres no pudo
// castear a UUID (SQLSTATE 22P02), típico de ids arbitrarios en la URL.
func IsMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepCode
}

// IsNotFound reporta si err equivale a "no existe": la consulta no devolvió
// filas, o el id está malformado y ningún registro puede tenerlo.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || IsMalformedID(err)
}
