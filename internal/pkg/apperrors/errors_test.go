package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorCollectsFields(t *testing.T) {
	ve := NewValidationError().
		Add("name", "name is required").
		Add("name", "name must be at most 50 characters").
		Add("gender", "gender must be male or female")

	assert.True(t, ve.HasErrors())
	assert.Len(t, ve.Fields["name"], 2)
	assert.Len(t, ve.Fields["gender"], 1)
	assert.Equal(t, "validation failed: gender, name", ve.Error())
}

func TestErrOrNilAvoidsTypedNil(t *testing.T) {
	ve := NewValidationError()
	// An empty validator must become a true nil error, not a typed nil
	// inside the interface
	assert.NoError(t, ve.ErrOrNil())

	ve.Add("name", "name is required")
	assert.Error(t, ve.ErrOrNil())
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := NewValidationError().Add("email", "email is required").ErrOrNil()
	assert.ErrorIs(t, err, ErrValidationFailed)

	wrapped := fmt.Errorf("outer: %w", err)
	assert.ErrorIs(t, wrapped, ErrValidationFailed)
}

func TestFieldsOf(t *testing.T) {
	err := NewValidationError().Add("email", "email is required").ErrOrNil()
	fields := FieldsOf(err)
	require.NotNil(t, fields)
	assert.Equal(t, []string{"email is required"}, fields["email"])

	wrapped := fmt.Errorf("outer: %w", err)
	assert.NotNil(t, FieldsOf(wrapped))

	assert.Nil(t, FieldsOf(errors.New("plain")))
	assert.Nil(t, FieldsOf(nil))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("student")
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.Contains(t, err.Error(), "student")
}
