package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the services react to.
const (
	pgInvalidTextRepresentation = "22P02"
	pgUniqueViolation           = "23505"
)

// ErrInvalidCredentials is returned for every failed login. The message does
// not distinguish an unknown user from a wrong password.
var ErrInvalidCredentials = errors.New("invalid user id or password")

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ValidationError reports every missing or malformed required field of a
// request, not just the first.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// ConflictError reports a uniqueness violation on a natural key.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func notFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func conflict(message string) error {
	return &ConflictError{Message: message}
}

// isNoRows reports whether err means the lookup matched no row. Natural
// keys probed against a uuid column fail the cast with 22P02; that is a
// miss, not a server fault, so identifier resolution can fall through to
// the natural-key lookup.
func isNoRows(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	return pgCode(err) == pgInvalidTextRepresentation
}

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
