package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Curation Errors.

	// ErrMissingField indicates a record lacks a field the pipeline reads.
	// All records at a pipeline stage are expected to share one schema.
	ErrMissingField = errors.New("missing field")

	// Quiz Errors.

	// ErrInsufficientPopulation indicates a sample asked for more distinct
	// items than are available.
	ErrInsufficientPopulation = errors.New("insufficient sample population")

	// ErrEmptyIndex indicates the artist index holds fewer than two artists,
	// so no quiz can be drawn from it.
	ErrEmptyIndex = errors.New("artist index has fewer than two artists")

	// ErrInvalidChoice indicates an answer refers to a choice outside the round.
	ErrInvalidChoice = errors.New("invalid choice")
)

// MissingFieldError reports the field a record was expected to carry.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrMissingField, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InsufficientPopulationError reports a sample request that cannot be met.
type InsufficientPopulationError struct {
	// Artist is the index key the sample was drawn from, if any.
	Artist string

	// Want is the number of distinct items requested.
	Want int

	// Have is the number of items available.
	Have int
}

func (e *InsufficientPopulationError) Error() string {
	if e.Artist == "" {
		return fmt.Sprintf("%s: want %d, have %d", ErrInsufficientPopulation, e.Want, e.Have)
	}
	return fmt.Sprintf("%s: want %d from %q, have %d", ErrInsufficientPopulation, e.Want, e.Artist, e.Have)
}

// Is reports whether target is ErrInsufficientPopulation.
func (e *InsufficientPopulationError) Is(target error) bool {
	return target == ErrInsufficientPopulation
}
