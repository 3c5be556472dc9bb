package platform

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validated struct {
	Title  string `json:"title,omitempty" validate:"required"`
	Hidden string `json:"-" validate:"required"`
	Plain  string `validate:"required"`
}

func TestNewValidator_UsesJSONNames(t *testing.T) {
	err := NewValidator().Struct(validated{})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 3)
	assert.Equal(t, "title", verrs[0].Field())
	assert.Equal(t, "Hidden", verrs[1].Field())
	assert.Equal(t, "Plain", verrs[2].Field())
}
