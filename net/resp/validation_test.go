package resp

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createBody struct {
	Question   string `validate:"required"`
	Difficulty int    `validate:"min=1,max=5"`
}

func TestFieldErrors(t *testing.T) {
	err := validator.New().Struct(createBody{Difficulty: 9})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, map[string]string{"Question": "required", "Difficulty": "max=5"}, fields)
}

func TestInvalid(t *testing.T) {
	ex := Invalid(errors.New("unexpected EOF"))
	assert.Equal(t, http.StatusUnprocessableEntity, ex.Status)
	assert.Equal(t, "unexpected EOF", ex.Message)
	assert.Nil(t, ex.Errors)

	ex = Invalid(validator.New().Struct(createBody{Difficulty: 1}))
	assert.Equal(t, "validation failed", ex.Message)
	assert.Equal(t, map[string]string{"Question": "required"}, ex.Errors)
}
