package domain

import (
	"fmt"
	"net/url"
	"slices"
	"time"
)

const unknownDescription = "Unknown"

// DefaultURLBase is prefixed to an object ID to form its resource URL.
const DefaultURLBase = "https://collectionapi.metmuseum.org/public/collection/v1/objects/"

// DefaultMinRecords is the number of qualifying paintings an artist needs
// before appearing in the index.
const DefaultMinRecords = 3

// MultiValueMode selects how delimiter-joined values are expanded when
// collecting distinct field values.
type MultiValueMode string

// Available multi-value modes.
const (
	// MultiValueLiteral keeps the behaviour of the original curation script:
	// a token is only kept when it is not a substring of the joined value it
	// came from, so joined values never contribute members.
	MultiValueLiteral MultiValueMode = "literal"

	// MultiValueTokens adds every token that is not already present.
	MultiValueTokens MultiValueMode = "tokens"
)

// IsValid returns true if the mode is recognised.
func (m MultiValueMode) IsValid() bool {
	switch m {
	case MultiValueLiteral, MultiValueTokens:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m MultiValueMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m MultiValueMode) Description() string {
	switch m {
	case MultiValueLiteral:
		return "Literal (joined values are not expanded)"
	case MultiValueTokens:
		return "Tokens (joined values are split and deduplicated)"
	default:
		return unknownDescription
	}
}

// AllMultiValueModes returns all available multi-value modes.
func AllMultiValueModes() []MultiValueMode {
	return []MultiValueMode{MultiValueLiteral, MultiValueTokens}
}

// PipelineSettings holds curation pipeline configuration.
type PipelineSettings struct {
	// RetainFields are copied from each surviving record.
	RetainFields []string

	// TargetDepartments gate which artists enter the index.
	TargetDepartments []string

	// MinRecords is the minimum qualifying painting count per artist.
	MinRecords int

	// URLBase is prefixed to each object ID.
	URLBase string

	// MultiValueMode controls expansion of delimiter-joined values.
	MultiValueMode MultiValueMode
}

// PathSettings holds input and output file locations.
type PathSettings struct {
	// Input is the museum object CSV export.
	Input string

	// Index is where the artist URL index is written (.json, .yaml or .yml).
	Index string
}

// QuizSettings holds quiz sampling configuration.
type QuizSettings struct {
	// Seed feeds the random source when Seeded is true.
	Seed uint64

	// Seeded makes draws reproducible. When false the source is time-seeded.
	Seeded bool
}

// MuseumSettings holds museum collection API client configuration.
type MuseumSettings struct {
	// Enabled turns on artwork metadata fetching for quiz rounds.
	Enabled bool

	// RateLimit is the proactive request rate per second.
	RateLimit float64

	// Timeout bounds a single request.
	Timeout time.Duration
}

// AppSettings is the root settings structure for the application.
type AppSettings struct {
	// Pipeline holds curation settings.
	Pipeline PipelineSettings

	// Paths holds file locations.
	Paths PathSettings

	// Quiz holds sampling settings.
	Quiz QuizSettings

	// Museum holds museum API settings.
	Museum MuseumSettings
}

// DefaultRetainFields returns the fields kept on every curated painting.
func DefaultRetainFields() []string {
	return []string{
		FieldArtist,
		FieldDepartment,
		FieldLinkResource,
		FieldMedium,
		FieldObjectDate,
		FieldObjectID,
		FieldTags,
		FieldTitle,
	}
}

// DefaultTargetDepartments returns the departments used to gate artists.
func DefaultTargetDepartments() []string {
	return []string{
		"European Paintings",
		"Robert Lehman Collection",
	}
}

// DefaultAppSettings returns settings with sensible defaults.
// The quiz is time-seeded unless a seed is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Pipeline: PipelineSettings{
			RetainFields:      DefaultRetainFields(),
			TargetDepartments: DefaultTargetDepartments(),
			MinRecords:        DefaultMinRecords,
			URLBase:           DefaultURLBase,
			MultiValueMode:    MultiValueLiteral,
		},
		Paths: PathSettings{
			Input: "MetObjects.csv",
			Index: "painting_urls.json",
		},
		Museum: MuseumSettings{
			Enabled:   true,
			RateLimit: 40, // half the published 80 req/s ceiling
			Timeout:   10 * time.Second,
		},
	}
}

// requiredRetainFields are read downstream of the attribution filter.
var requiredRetainFields = []string{FieldArtist, FieldDepartment, FieldObjectID}

// Validate checks the pipeline settings are usable.
func (p PipelineSettings) Validate() error {
	for _, field := range requiredRetainFields {
		if !slices.Contains(p.RetainFields, field) {
			return fmt.Errorf("%w: retain fields must include %q", ErrInvalidInput, field)
		}
	}
	if len(p.TargetDepartments) == 0 {
		return fmt.Errorf("%w: at least one target department is required", ErrInvalidInput)
	}
	if p.MinRecords < 1 {
		return fmt.Errorf("%w: min records must be at least 1, got %d", ErrInvalidInput, p.MinRecords)
	}
	u, err := url.Parse(p.URLBase)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: url base must be an absolute http(s) URL, got %q", ErrInvalidInput, p.URLBase)
	}
	if !p.MultiValueMode.IsValid() {
		return fmt.Errorf("%w: unknown multi-value mode %q", ErrInvalidInput, p.MultiValueMode)
	}
	return nil
}

// Validate checks all settings.
func (s AppSettings) Validate() error {
	if err := s.Pipeline.Validate(); err != nil {
		return err
	}
	if s.Museum.Enabled && s.Museum.RateLimit <= 0 {
		return fmt.Errorf("%w: museum rate limit must be positive", ErrInvalidInput)
	}
	return nil
}
