package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/thenoetrevino/lbl/internal/labels"
	"github.com/thenoetrevino/lbl/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s", color)
	}
	return nil
}

// Fail reports err through formatter and returns it wrapped with the exit
// code matching its kind
func Fail(formatter *OutputFormatter, code string, err error) error {
	exit := ExitCodeFor(err)

	var (
		fmtErr   error
		formErrs labels.FormErrors
	)
	if errors.As(err, &formErrs) && len(formErrs.Fields()) > 0 {
		msg := formErrs.Message()
		if msg == "" {
			msg = "label was rejected"
		}
		fmtErr = formatter.FieldErrors(code, msg, formErrs.Fields())
	} else {
		fmtErr = formatter.Error(code, err.Error())
	}
	if fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Exit(exit, err)
}

// FindLabel loads the label list and returns the label with id
func FindLabel(ctx context.Context, store *labels.Store, id int) (*models.Label, error) {
	if !store.Loaded() {
		if err := store.LoadLabels(ctx); err != nil {
			return nil, err
		}
	}
	label, ok := store.Label(id)
	if !ok {
		return nil, fmt.Errorf("label %d: %w", id, models.ErrLabelNotFound)
	}
	return label, nil
}

// Confirm reads a yes/no answer. Anything but y or yes means no.
func Confirm(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
