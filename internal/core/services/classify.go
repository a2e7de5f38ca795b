package services

import (
	"strings"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

const (
	publicDomainFlag        = "True"
	paintingsClassification = "Paintings"
)

// IsPublicDomainPainting reports whether record is a public-domain painting
// with a named artist. Fields are read in order and evaluation stops at the
// first failing test, so a field is only required once the tests before it pass.
func IsPublicDomainPainting(record domain.Record) (bool, error) {
	flag, err := record.Value(domain.FieldIsPublicDomain)
	if err != nil {
		return false, err
	}
	if flag != publicDomainFlag {
		return false, nil
	}

	classification, err := record.Value(domain.FieldClassification)
	if err != nil {
		return false, err
	}
	if !strings.Contains(classification, paintingsClassification) {
		return false, nil
	}

	artist, err := record.Value(domain.FieldArtist)
	if err != nil {
		return false, err
	}
	return artist != "", nil
}

// ClassifyPublicDomainPaintings returns copies of the records that are
// public-domain paintings, in input order.
func ClassifyPublicDomainPaintings(records []domain.Record) ([]domain.Record, error) {
	matched := make([]domain.Record, 0, len(records))
	for _, record := range records {
		ok, err := IsPublicDomainPainting(record)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, record.Clone())
		}
	}
	return matched, nil
}
