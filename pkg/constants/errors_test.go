package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError_BuildsCodedMessage(t *testing.T) {
	err := NewError(ErrValidation, "maxPlantSpecies must be positive")
	require.Error(t, err)
	assert.Equal(t, "[VALIDATION_ERROR] maxPlantSpecies must be positive", err.Error())
}

func TestNewError_RejectsEmptyCodeOrMessage(t *testing.T) {
	assert.Contains(t, NewError("", "message").Error(), "error code cannot be empty")
	assert.Contains(t, NewError(ErrValidation, "").Error(), "error message cannot be empty")
}

func TestNewError_RejectsUnknownCode(t *testing.T) {
	err := NewError("NOT_A_REAL_CODE", "message")
	assert.Contains(t, err.Error(), "invalid error code")
}

func TestWrapError_PreservesCodePrefix(t *testing.T) {
	original := NewError(ErrCatalogue, "load failed")
	wrapped := WrapError(original, "warm failed")
	assert.Equal(t, "[CATALOGUE_ERROR] warm failed: [CATALOGUE_ERROR] load failed", wrapped.Error())
}

func TestWrapError_NilOrEmptyMessage(t *testing.T) {
	assert.Nil(t, WrapError(nil, "message"))

	original := NewError(ErrValidation, "bad")
	assert.Equal(t, original.Error(), WrapError(original, "").Error())
}
