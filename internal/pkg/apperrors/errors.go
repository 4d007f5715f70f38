// Package apperrors defines the sentinel errors shared across services
// and their HTTP mapping. Usecases wrap these with context via
// fmt.Errorf("...: %w", err); handlers translate them with HTTPStatus.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidTransition means the requested lifecycle change is not
	// allowed from the entity's current state.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrUnauthorized means the caller's identity or role does not permit
	// the operation on this entity.
	ErrUnauthorized = errors.New("operation not permitted")

	// ErrConflict means a concurrent writer won the conditional update.
	ErrConflict = errors.New("concurrent modification conflict")

	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrStorageUnavailable means the ledger could not be reached or the
	// statement timed out.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrValidation means the request payload failed domain validation.
	ErrValidation = errors.New("validation failed")
)

// HTTPStatus maps a domain error to its response status code
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the machine-readable code for a domain error
func Code(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrValidation):
		return "validation_failed"
	case errors.Is(err, ErrStorageUnavailable):
		return "storage_unavailable"
	default:
		return "internal_error"
	}
}
