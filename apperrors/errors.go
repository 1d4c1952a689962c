// Package apperrors defines the error taxonomy shared by services and
// controllers. Every failure that reaches a route boundary is one of the
// kinds below; the Message is what the client sees, Err is only logged.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindServiceUnavailable
)

const (
	InvalidJSONBodyMsg     = "Invalid JSON body"
	MissingFieldMsg        = "Missing or empty field: %s"
	UnauthorizedMsg        = "Unauthorized"
	DatabaseUnavailableMsg = "Database unavailable"
	InsertFailedMsg        = "Database insert failed"
	LoadRecordsFailedMsg   = "Failed to load records"
	CountFailedMsg         = "Failed to count records"
	ExportFailedMsg        = "Export failed"
	InternalErrorMsg       = "Internal server error"
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindUnauthorized:
		return "Unauthorized"
	case KindServiceUnavailable:
		return "ServiceUnavailable"
	default:
		return "InternalError"
	}
}

// Status maps the kind to its HTTP status code
func (k Kind) Status() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s | %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Response is the JSON envelope written for every failed request
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Response returns the client-facing envelope. It never carries Err.
func (e *Error) Response() Response {
	return Response{Success: false, Error: e.Message}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func MissingField(name string) *Error {
	return BadRequest(fmt.Sprintf(MissingFieldMsg, name))
}

func InvalidJSONBody(err error) *Error {
	return &Error{Kind: KindBadRequest, Message: InvalidJSONBodyMsg, Err: err}
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: UnauthorizedMsg}
}

func ServiceUnavailable() *Error {
	return &Error{Kind: KindServiceUnavailable, Message: DatabaseUnavailableMsg}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// From converts any error into an *Error. Errors outside the taxonomy
// become InternalError with a generic message so nothing internal leaks.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(InternalErrorMsg, err)
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
