// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for domain layer.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)

// Messages returned to callers for errors whose detail must not leak.
const (
	MessageForbidden = "verification failed"
	MessageNotFound  = "no leave record matches the given service code and id number"
	MessageInternal  = "internal server error"
)

// RespondError maps domain errors to JSON failure envelopes. Validation errors
// carry a caller-safe message; every other class uses a fixed message.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		Fail(w, http.StatusForbidden, MessageForbidden)
	case errors.Is(err, ErrNotFound):
		Fail(w, http.StatusNotFound, MessageNotFound)
	default:
		Fail(w, http.StatusInternalServerError, MessageInternal)
	}
}
