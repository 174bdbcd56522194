package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lbl/internal/api"
	"github.com/thenoetrevino/lbl/internal/labels"
	"github.com/thenoetrevino/lbl/internal/models"
	"github.com/thenoetrevino/lbl/internal/testutil"
)

// ============================================================================
// Color Validation Tests
// ============================================================================

func TestValidateColorHex_Valid(t *testing.T) {
	for _, color := range []string{"#FF0000", "#ff5733", "#AbCdEf", "#000000"} {
		assert.NoError(t, ValidateColorHex(color), color)
	}
}

func TestValidateColorHex_Invalid(t *testing.T) {
	for _, color := range []string{"FF0000", "#FF00", "#FF00000", "#GG0000", "", "red"} {
		assert.Error(t, ValidateColorHex(color), color)
	}
}

func TestColorValue(t *testing.T) {
	v := NewColorValue("")
	assert.Equal(t, "color", v.Type())

	require.NoError(t, v.Set(" #ff5733 "))
	assert.Equal(t, "#FF5733", v.String())

	assert.Error(t, v.Set("orange"))
	assert.Equal(t, "#FF5733", v.String(), "a rejected value must not replace the old one")
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCodeFor(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"form field errors", labels.FormErrors{"name": "taken"}, ExitValidation},
		{"form message only", labels.FormErrors{labels.FormErrorKey: "nope"}, ExitError},
		{"not found sentinel", models.ErrLabelNotFound, ExitNotFound},
		{"api 404", api.NewMessageError(404, "Label not found."), ExitNotFound},
		{"api field error", api.NewFieldError("color", "bad"), ExitValidation},
		{"api 400 message", api.NewMessageError(400, "Invalid label ID."), ExitUsage},
		{"api 500", api.NewMessageError(500, "boom"), ExitError},
		{"malformed response", fmt.Errorf("%w: GET /api/label", api.ErrMalformedResponse), ExitDataErr},
		{"plain", errors.New("network down"), ExitError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCodeFor(tc.err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitUsage, ExitCode(Exit(ExitUsage, errors.New("x"))))
	assert.Equal(t, ExitNotFound, ExitCode(models.ErrLabelNotFound))

	wrapped := Exit(ExitValidation, models.ErrLabelNotFound)
	assert.ErrorIs(t, wrapped, models.ErrLabelNotFound)
}

func TestFailReportsFieldErrors(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)

	err := Fail(f, "LABEL_SAVE_ERROR", labels.FormErrors{"name": "Name is required"})
	assert.Equal(t, ExitValidation, ExitCode(err))
	assert.Contains(t, errOut.String(), "Name is required")
}

func TestConfirm(t *testing.T) {
	for _, yes := range []string{"y", "Y", "yes", " YES \n"} {
		assert.True(t, Confirm(yes), yes)
	}
	for _, no := range []string{"", "n", "no", "yep"} {
		assert.False(t, Confirm(no), no)
	}
}

func TestGetCLIFromContextUsesInjectedApp(t *testing.T) {
	a := testutil.SetupTestApp(t)
	c, err := GetCLIFromContext(WithApp(context.Background(), a))
	require.NoError(t, err)
	assert.Same(t, a, c.App)

	// Closing a CLI over an injected app leaves the app usable
	require.NoError(t, c.Close())
	require.NoError(t, a.Store.LoadLabels(context.Background()))
}
