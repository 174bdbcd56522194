package labels

import (
	"maps"
	"slices"
	"strings"

	"github.com/thenoetrevino/lbl/internal/api"
)

const (
	// FormErrorKey holds a form-wide message in FormErrors
	FormErrorKey = "_error"

	// GenericErrorMessage is shown when the backend gave nothing usable
	GenericErrorMessage = "An unknown error occurred"
)

// FormErrors maps a form field to its error message. A message that is not
// tied to a field lives under FormErrorKey. FormErrors is returned as the
// error of a failed save so forms can place each message next to its field.
type FormErrors map[string]string

// FormErrorsFrom translates a save failure into FormErrors: the backend's
// field errors when present, else its message, else GenericErrorMessage.
func FormErrorsFrom(err error) FormErrors {
	if apiErr, ok := api.AsError(err); ok {
		if len(apiErr.Data.Errors) > 0 {
			return FormErrors(maps.Clone(apiErr.Data.Errors))
		}
		if apiErr.Data.Message != "" {
			return FormErrors{FormErrorKey: apiErr.Data.Message}
		}
	}
	return FormErrors{FormErrorKey: GenericErrorMessage}
}

// Message returns the form-wide message, if any.
func (f FormErrors) Message() string {
	return f[FormErrorKey]
}

// Fields returns the field-level errors only.
func (f FormErrors) Fields() map[string]string {
	fields := make(map[string]string, len(f))
	for k, v := range f {
		if k != FormErrorKey {
			fields[k] = v
		}
	}
	return fields
}

// Error renders the form-wide message, or the field errors sorted by field.
func (f FormErrors) Error() string {
	if msg := f.Message(); msg != "" {
		return msg
	}
	fields := f.Fields()
	parts := make([]string, 0, len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}
