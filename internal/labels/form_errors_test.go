package labels

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/lbl/internal/api"
)

func TestFormErrorsFrom_PrefersFieldErrors(t *testing.T) {
	err := &api.Error{
		Status: http.StatusBadRequest,
		Data: api.ErrorData{
			Errors:  map[string]string{"name": "required", "color": "bad"},
			Message: "ignored when field errors exist",
		},
	}

	fe := FormErrorsFrom(err)
	assert.Equal(t, FormErrors{"name": "required", "color": "bad"}, fe)
	assert.Empty(t, fe.Message())
	assert.Equal(t, "color: bad; name: required", fe.Error())
}

func TestFormErrorsFrom_WrappedAPIError(t *testing.T) {
	wrapped := fmt.Errorf("saving: %w", api.NewMessageError(http.StatusConflict, "name taken"))
	fe := FormErrorsFrom(wrapped)
	assert.Equal(t, "name taken", fe.Message())
	assert.Equal(t, "name taken", fe.Error())
	assert.Empty(t, fe.Fields())
}

func TestFormErrorsFrom_DoesNotAliasBackendMap(t *testing.T) {
	apiErr := api.NewFieldError("name", "required")
	fe := FormErrorsFrom(apiErr)
	fe["name"] = "changed"
	assert.Equal(t, "required", apiErr.Data.Errors["name"])
}

func TestFormErrorsFrom_Fallback(t *testing.T) {
	assert.Equal(t, FormErrors{FormErrorKey: GenericErrorMessage}, FormErrorsFrom(fmt.Errorf("eof")))
	assert.Equal(t, FormErrors{FormErrorKey: GenericErrorMessage}, FormErrorsFrom(&api.Error{Status: 502}))
}
