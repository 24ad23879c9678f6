package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// APIError pairs an HTTP status with a short human-readable message. Every
// failure crossing a service boundary is one of these; controllers render the
// status and message verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func Unauthorized(message string) *APIError {
	return NewAPIError(http.StatusUnauthorized, message)
}

func BadRequest(message string) *APIError {
	return NewAPIError(http.StatusBadRequest, message)
}

func NotFound(message string) *APIError {
	return NewAPIError(http.StatusNotFound, message)
}

func Conflict(message string) *APIError {
	return NewAPIError(http.StatusConflict, message)
}

func Internal(message string) *APIError {
	return NewAPIError(http.StatusInternalServerError, message)
}

// Postgres SQLSTATE codes the API maps to client-facing statuses.
const (
	pgNoData              = "02000"
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// FromDB translates a gorm/driver error into the API taxonomy. Unrecognized
// SQLSTATEs surface as a 500 with the raw code in the message.
func FromDB(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("no rows")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNoData:
			return NotFound("no rows")
		case pgNotNullViolation:
			return BadRequest("not null violation")
		case pgForeignKeyViolation:
			return NotFound("foreign key violation")
		case pgUniqueViolation:
			return Conflict("unique violation")
		case pgCheckViolation:
			return BadRequest("check violation")
		default:
			return Internal(fmt.Sprintf("unknown error code: %s", pgErr.Code))
		}
	}

	return Internal(err.Error())
}
