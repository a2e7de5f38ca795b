package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrMissingField", ErrMissingField},
		{"ErrInsufficientPopulation", ErrInsufficientPopulation},
		{"ErrEmptyIndex", ErrEmptyIndex},
		{"ErrInvalidChoice", ErrInvalidChoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrNotImplemented,
		ErrMissingField,
		ErrInsufficientPopulation,
		ErrEmptyIndex,
		ErrInvalidChoice,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Field: "Department"}

	assert.Equal(t, `missing field: "Department"`, err.Error())
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.False(t, errors.Is(err, ErrNotFound))

	wrapped := fmt.Errorf("grouping: %w", err)
	assert.True(t, errors.Is(wrapped, ErrMissingField))

	var target *MissingFieldError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "Department", target.Field)
}

func TestInsufficientPopulationError(t *testing.T) {
	t.Run("with artist", func(t *testing.T) {
		err := &InsufficientPopulationError{Artist: "Claude Monet", Want: 3, Have: 2}

		assert.Equal(t, `insufficient sample population: want 3 from "Claude Monet", have 2`, err.Error())
		assert.True(t, errors.Is(err, ErrInsufficientPopulation))
	})

	t.Run("without artist", func(t *testing.T) {
		err := &InsufficientPopulationError{Want: 2, Have: 1}

		assert.Equal(t, "insufficient sample population: want 2, have 1", err.Error())
		assert.False(t, errors.Is(err, ErrEmptyIndex))
	})
}
