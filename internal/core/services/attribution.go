package services

import (
	"strings"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

// unreliableAttributions mark generic or workshop attributions.
var unreliableAttributions = []string{"unidentified", "painter"}

// HasReliableAttribution reports whether an artist display name names a
// single, identified artist.
func HasReliableAttribution(artist string) bool {
	if strings.Contains(artist, domain.MultiValueDelimiter) {
		return false
	}
	lower := strings.ToLower(artist)
	for _, marker := range unreliableAttributions {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// FilterAttributions projects every record with a reliable attribution onto
// the retained fields. The Tag field is always split on the multi-value
// delimiter; an absent or empty Tag yields no values.
//
// A retained field the record does not carry is a *domain.MissingFieldError.
func FilterAttributions(records []domain.Record, retain []string) ([]domain.Painting, error) {
	paintings := make([]domain.Painting, 0, len(records))
	for _, record := range records {
		artist, err := record.Value(domain.FieldArtist)
		if err != nil {
			return nil, err
		}
		if !HasReliableAttribution(artist) {
			continue
		}

		fields := make(map[string]string, len(retain))
		for _, field := range retain {
			if field == domain.FieldTag {
				continue
			}
			value, err := record.Value(field)
			if err != nil {
				return nil, err
			}
			fields[field] = value
		}

		tag, _ := record.Lookup(domain.FieldTag)
		paintings = append(paintings, domain.NewPainting(fields, domain.SplitMultiValue(tag)))
	}
	return paintings, nil
}
