package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/thenoetrevino/lbl/internal/api"
	"github.com/thenoetrevino/lbl/internal/labels"
	"github.com/thenoetrevino/lbl/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Backend errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested label was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable backend responses or unparsable input.
	ExitDataErr = 4

	// ExitValidation indicates the backend rejected a label's fields.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code of a failed command. The
// command has already reported the failure to the user.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an explicit exit code
func Exit(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode returns the code the process should exit with for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCodeFor(err)
}

// ExitCodeFor classifies an operation error
func ExitCodeFor(err error) int {
	var formErrs labels.FormErrors
	if errors.As(err, &formErrs) && len(formErrs.Fields()) > 0 {
		return ExitValidation
	}
	if errors.Is(err, models.ErrLabelNotFound) || api.IsNotFound(err) {
		return ExitNotFound
	}
	if errors.Is(err, api.ErrMalformedResponse) {
		return ExitDataErr
	}
	if apiErr, ok := api.AsError(err); ok {
		switch {
		case apiErr.Status == http.StatusBadRequest && len(apiErr.Data.Errors) > 0:
			return ExitValidation
		case apiErr.Status == http.StatusBadRequest:
			return ExitUsage
		}
	}
	return ExitError
}
