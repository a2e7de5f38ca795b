package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

func TestHasReliableAttribution(t *testing.T) {
	tests := []struct {
		artist string
		want   bool
	}{
		{"Vincent van Gogh", true},
		{"Claude Monet|Pierre-Auguste Renoir", false},
		{"Unidentified Artist", false},
		{"UNIDENTIFIED", false},
		{"American Painter", false},
		{"Workshop of a PAINTER", false},
		{"Rembrandt (Rembrandt van Rijn)", true},
	}
	for _, tt := range tests {
		t.Run(tt.artist, func(t *testing.T) {
			assert.Equal(t, tt.want, HasReliableAttribution(tt.artist))
		})
	}
}

func TestFilterAttributions(t *testing.T) {
	input := records(
		metRecord("Vincent van Gogh", "European Paintings", "1"),
		metRecord("Unidentified Artist", "European Paintings", "2"),
		metRecord("Claude Monet|Pierre-Auguste Renoir", "European Paintings", "3"),
		metRecord("American Painter", "The American Wing", "4"),
	)

	got, err := FilterAttributions(input, domain.DefaultRetainFields())
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, "Vincent van Gogh", p.Artist())
	assert.Equal(t, "1", p.ObjectID())
	assert.Equal(t, []string{"Landscapes", "Trees"}, p.Tag())

	_, ok := p.Lookup(domain.FieldIsPublicDomain)
	assert.False(t, ok, "fields outside the retain list are dropped")
}

func TestFilterAttributions_NeverKeepsUnreliableArtists(t *testing.T) {
	input := records(
		metRecord("A|B", "d", "1"),
		metRecord("unidentified", "d", "2"),
		metRecord("Painter of Vases", "d", "3"),
		metRecord("Mary Cassatt", "d", "4"),
	)

	got, err := FilterAttributions(input, []string{domain.FieldArtist, domain.FieldDepartment, domain.FieldObjectID})
	require.NoError(t, err)
	for _, p := range got {
		assert.True(t, HasReliableAttribution(p.Artist()), p.Artist())
	}
	assert.Len(t, got, 1)
}

func TestFilterAttributions_Tag(t *testing.T) {
	retain := []string{domain.FieldArtist, domain.FieldDepartment, domain.FieldObjectID, domain.FieldTag}

	t.Run("empty tag", func(t *testing.T) {
		got, err := FilterAttributions(records(with(metRecord("A", "d", "1"), domain.FieldTag, "")), retain)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.NotNil(t, got[0].Tag())
		assert.Empty(t, got[0].Tag())
	})

	t.Run("absent tag", func(t *testing.T) {
		got, err := FilterAttributions(records(without(metRecord("A", "d", "1"), domain.FieldTag)), retain)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Empty(t, got[0].Tag())
	})

	t.Run("keeps order and empties", func(t *testing.T) {
		got, err := FilterAttributions(records(with(metRecord("A", "d", "1"), domain.FieldTag, "Men||Horses")), retain)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"Men", "", "Horses"}, got[0].Tag())
	})
}

func TestFilterAttributions_MissingRetainedField(t *testing.T) {
	input := records(without(metRecord("A", "d", "1"), domain.FieldMedium))

	_, err := FilterAttributions(input, domain.DefaultRetainFields())

	var missing *domain.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.FieldMedium, missing.Field)
}

func TestFilterAttributions_DoesNotMutateInput(t *testing.T) {
	row := metRecord("A", "d", "1")
	input := records(row)

	_, err := FilterAttributions(input, domain.DefaultRetainFields())
	require.NoError(t, err)

	tag, _ := input[0].Lookup(domain.FieldTag)
	assert.Equal(t, "Landscapes|Trees", tag)
	assert.Equal(t, len(row), input[0].Len())
}
