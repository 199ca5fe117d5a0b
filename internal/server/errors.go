// Package server provides the HTTP API for parsing and scoring resumes.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPayloadTooLarge indicates the request body exceeded its limit
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body too large: limit is %d bytes", e.Limit)
}

// ErrStoreUnavailable indicates an endpoint needs persistence that is not configured
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "result storage is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		tooLarge       *ErrPayloadTooLarge
		unavailable    *ErrStoreUnavailable
		unsupported    *ingestion.UnsupportedFormatError
		schemaErr      *schemas.ValidationError
		maxBytesReader *http.MaxBytesError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &unsupported), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge), errors.As(err, &maxBytesReader):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
