// Package services holds the business logic behind the public booking
// API: the availability engine, booking admission and the owner
// notifier. Handlers translate the sentinel errors defined here into
// HTTP responses.
package services

import "errors"

// ErrNotFound is returned when a referenced tenant, service, store-hours
// record or booking does not exist or is inactive. Handlers should
// translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrInvalidRequest is returned when a caller-supplied value violates a
// business rule (past date, holiday, closed day, cancellation window).
// Handlers should translate this into an HTTP 400 response.
var ErrInvalidRequest = errors.New("invalid request")

// ErrConflict is returned when a slot was taken by a concurrent booking
// between availability read and admission write. Handlers should
// translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// RequestError pairs one of the sentinel kinds above with a
// caller-facing message. errors.Is against the sentinels still works
// through Unwrap.
type RequestError struct {
	kind    error
	message string
}

func (e *RequestError) Error() string { return e.message }

func (e *RequestError) Unwrap() error { return e.kind }

func notFound(message string) error {
	return &RequestError{kind: ErrNotFound, message: message}
}

func invalidRequest(message string) error {
	return &RequestError{kind: ErrInvalidRequest, message: message}
}

func conflict(message string) error {
	return &RequestError{kind: ErrConflict, message: message}
}
