package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string  `json:"email" validate:"required,email"`
	Title *string `json:"title,omitempty" validate:"omitempty,max=5"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Email: "u1@example.com"}))

	long := "too long title"
	err := v.Validate(&sample{Email: "not-an-email", Title: &long})
	require.Error(t, err)
	assert.Equal(t, "email: email; title: max=5", Describe(err))
}

func TestDescribe_RequiredUsesJSONName(t *testing.T) {
	err := New().Validate(&sample{})
	require.Error(t, err)
	assert.Equal(t, "email: required", Describe(err))
}
