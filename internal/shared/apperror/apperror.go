package apperror

import (
	"errors"
	"net/http"
)

// Kind is the closed set of error classes the API reports.
// Everything a handler returns to a client is one of these three.
type Kind int

const (
	KindInvalidInput Kind = iota // client sent something unusable (400)
	KindNotFound                 // referenced row does not exist (404)
	KindInternal                 // persistence/transport failure (500)
)

// Error carries a classified, client-facing message. The wrapped cause (if
// any) stays available for logging via errors.Unwrap.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

// InvalidInput builds a 400-class error with a human-readable message.
func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

// NotFound builds a 404-class error. The message is the exact wire string,
// e.g. "Author not found".
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Internal wraps an unrecognized failure. The underlying message is passed
// through verbatim.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: err.Error(), Cause: err}
}

// HTTPStatus converts an error to its HTTP status code.
// Unclassified errors fall through to 500.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindInvalidInput:
			return http.StatusBadRequest
		case KindNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}
