package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse is wrapped into errors for 2xx responses whose body
// could not be decoded
var ErrMalformedResponse = errors.New("malformed response")

// ErrorData is the body shape the label backend returns on failure.
// Either Errors (field level) or Message (top level) may be set, or neither.
type ErrorData struct {
	Errors  map[string]string `json:"errors,omitempty"`
	Message string            `json:"message,omitempty"`
}

// Error is returned by LabelAPI implementations when the backend rejected a
// request. Transport failures are not wrapped in Error.
type Error struct {
	Status int
	Data   ErrorData

	// Cause is the in-process error behind a locally produced Error
	Cause error
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Error() string {
	switch {
	case e.Data.Message != "":
		return fmt.Sprintf("label api: %d: %s", e.Status, e.Data.Message)
	case len(e.Data.Errors) > 0:
		return fmt.Sprintf("label api: %d: %d field error(s)", e.Status, len(e.Data.Errors))
	default:
		return fmt.Sprintf("label api: %d %s", e.Status, http.StatusText(e.Status))
	}
}

// NewFieldError builds a 400 Error carrying a single field error.
func NewFieldError(field, msg string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Data:   ErrorData{Errors: map[string]string{field: msg}},
	}
}

// NewMessageError builds an Error carrying only a top-level message.
func NewMessageError(status int, msg string) *Error {
	return &Error{Status: status, Data: ErrorData{Message: msg}}
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Status == http.StatusNotFound
}
