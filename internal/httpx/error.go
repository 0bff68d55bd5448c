package httpx

import (
	"errors"
	"net/http"
)

// Kind classifies a failure into the response taxonomy. Every operation
// translates its own failures locally; there is no central retry.
type Kind int

const (
	Validation     Kind = iota + 1 // 400
	Authentication                 // 401
	Authorization                  // 403
	NotFound                       // 404
	Conflict                       // 409
	Dependency                     // 503
	Internal                       // 500
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a taxonomy error with a user-facing message.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause. The cause is logged server-side only.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// StatusCode maps an error to its HTTP status. Unclassified errors are 500.
func StatusCode(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Authentication:
		return http.StatusUnauthorized
	case Authorization:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Dependency:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the message safe to show a client.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
