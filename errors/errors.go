package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrEmptyUsername     = fmt.Errorf("username must not be empty")
	ErrEmptyMessage      = fmt.Errorf("message must not be empty")
	ErrInvalidCursor     = fmt.Errorf("cursor must be an integer")
	ErrInvalidBody       = fmt.Errorf("invalid JSON")
	ErrRouteNotFound     = fmt.Errorf("not found")
	ErrServerUnreachable = fmt.Errorf("server unreachable")
	ErrBadResponse       = fmt.Errorf("malformed server response")
	ErrMessageRejected   = fmt.Errorf("message rejected")
	ErrUnexpectedStatus  = fmt.Errorf("unexpected status code")
)

// HTTPStatus maps a domain error to the status code the API answers with.
// Malformed input is always a client error, never a crash.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmptyUsername),
		errors.Is(err, ErrEmptyMessage),
		errors.Is(err, ErrInvalidCursor),
		errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest
	case errors.Is(err, ErrRouteNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
