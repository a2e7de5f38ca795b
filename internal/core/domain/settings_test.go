package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMultiValueMode_IsValid tests all valid and invalid modes
func TestMultiValueMode_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		mode     MultiValueMode
		expected bool
	}{
		{name: "literal is valid", mode: MultiValueLiteral, expected: true},
		{name: "tokens is valid", mode: MultiValueTokens, expected: true},
		{name: "empty string is invalid", mode: MultiValueMode(""), expected: false},
		{name: "unknown mode is invalid", mode: MultiValueMode("split"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.IsValid())
		})
	}
}

func TestMultiValueMode_Description(t *testing.T) {
	for _, m := range AllMultiValueModes() {
		assert.NotEqual(t, unknownDescription, m.Description())
		assert.Equal(t, string(m), m.String())
	}
	assert.Equal(t, unknownDescription, MultiValueMode("x").Description())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, DefaultMinRecords, s.Pipeline.MinRecords)
	assert.Equal(t, DefaultURLBase, s.Pipeline.URLBase)
	assert.Equal(t, MultiValueLiteral, s.Pipeline.MultiValueMode)
	assert.Equal(t, []string{"European Paintings", "Robert Lehman Collection"}, s.Pipeline.TargetDepartments)
	assert.Contains(t, s.Pipeline.RetainFields, FieldTags)
	assert.False(t, s.Quiz.Seeded)
	assert.NoError(t, s.Validate())
}

func TestPipelineSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PipelineSettings)
	}{
		{"missing object id", func(p *PipelineSettings) { p.RetainFields = []string{FieldArtist, FieldDepartment} }},
		{"missing artist", func(p *PipelineSettings) { p.RetainFields = []string{FieldObjectID, FieldDepartment} }},
		{"no departments", func(p *PipelineSettings) { p.TargetDepartments = nil }},
		{"zero min records", func(p *PipelineSettings) { p.MinRecords = 0 }},
		{"relative url base", func(p *PipelineSettings) { p.URLBase = "/objects/" }},
		{"ftp url base", func(p *PipelineSettings) { p.URLBase = "ftp://example.org/" }},
		{"unknown mode", func(p *PipelineSettings) { p.MultiValueMode = "x" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultAppSettings().Pipeline
			tt.mutate(&p)

			err := p.Validate()
			assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
		})
	}
}

func TestAppSettings_Validate_RateLimit(t *testing.T) {
	s := DefaultAppSettings()
	s.Museum.RateLimit = 0
	assert.Error(t, s.Validate())

	s.Museum.Enabled = false
	assert.NoError(t, s.Validate())
}
