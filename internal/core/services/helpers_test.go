package services

import (
	"github.com/custodia-labs/oddart/internal/core/domain"
)

// metRecord returns a full export row for a public domain painting.
func metRecord(artist, department, id string) map[string]string {
	return map[string]string{
		domain.FieldIsPublicDomain: "True",
		domain.FieldClassification: "Paintings",
		domain.FieldArtist:         artist,
		domain.FieldDepartment:     department,
		domain.FieldObjectID:       id,
		domain.FieldLinkResource:   "https://www.metmuseum.org/art/collection/search/" + id,
		domain.FieldMedium:         "Oil on canvas",
		domain.FieldObjectDate:     "1889",
		domain.FieldTags:           "Landscapes|Trees",
		domain.FieldTitle:          "Untitled " + id,
		domain.FieldTag:            "Landscapes|Trees",
	}
}

func records(rows ...map[string]string) []domain.Record {
	out := make([]domain.Record, len(rows))
	for i, row := range rows {
		out[i] = domain.NewRecord(row)
	}
	return out
}

func painting(artist, department, id string) domain.Painting {
	return domain.NewPainting(map[string]string{
		domain.FieldArtist:     artist,
		domain.FieldDepartment: department,
		domain.FieldObjectID:   id,
	}, nil)
}

func with(row map[string]string, field, value string) map[string]string {
	row[field] = value
	return row
}

func without(row map[string]string, field string) map[string]string {
	delete(row, field)
	return row
}
