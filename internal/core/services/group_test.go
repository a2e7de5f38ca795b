package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

func samplePaintings() []domain.Painting {
	return []domain.Painting{
		painting("Claude Monet", "European Paintings", "10"),
		painting("Winslow Homer", "The American Wing", "11"),
		painting("Claude Monet", "european paintings", "12"),
		painting("Claude Monet", "Robert Lehman Collection", "13"),
		painting("Claude Monet", "European Paintings", "10"),
	}
}

func TestFilterByField_CaseInsensitive(t *testing.T) {
	paintings := samplePaintings()

	upper, err := FilterByField(paintings, domain.FieldDepartment, "European Paintings")
	require.NoError(t, err)
	lower, err := FilterByField(paintings, domain.FieldDepartment, "european paintings")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	ids, err := ObjectIDs(upper)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "12", "10"}, ids)
}

func TestFilterByField_NoMatch(t *testing.T) {
	got, err := FilterByField(samplePaintings(), domain.FieldArtist, "Mary Cassatt")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterByField_MissingField(t *testing.T) {
	paintings := append(samplePaintings(), domain.NewPainting(map[string]string{domain.FieldArtist: "X"}, nil))

	_, err := FilterByField(paintings, domain.FieldDepartment, "European Paintings")

	var missing *domain.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.FieldDepartment, missing.Field)
}

func TestObjectIDs_PreservesOrderAndDuplicates(t *testing.T) {
	ids, err := ObjectIDs(samplePaintings())
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "11", "12", "13", "10"}, ids)

	_, err = ObjectIDs([]domain.Painting{domain.NewPainting(nil, nil)})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestGroupIndex_MatchesFilterByField(t *testing.T) {
	paintings := samplePaintings()

	idx, err := NewGroupIndex(paintings, domain.FieldArtist)
	require.NoError(t, err)
	assert.Equal(t, domain.FieldArtist, idx.Field())
	assert.Equal(t, 2, idx.Len())

	for _, artist := range []string{"Claude Monet", "CLAUDE MONET", "Winslow Homer", "Nobody"} {
		want, err := FilterByField(paintings, domain.FieldArtist, artist)
		require.NoError(t, err)
		assert.Equal(t, want, idx.Lookup(artist), artist)
	}
}

func TestGroupIndex_LookupReturnsCopy(t *testing.T) {
	idx, err := NewGroupIndex(samplePaintings(), domain.FieldArtist)
	require.NoError(t, err)

	got := idx.Lookup("Winslow Homer")
	require.Len(t, got, 1)
	got[0] = painting("Other", "d", "0")

	assert.Equal(t, "Winslow Homer", idx.Lookup("Winslow Homer")[0].Artist())
}

func TestGroupIndex_MissingField(t *testing.T) {
	_, err := NewGroupIndex([]domain.Painting{domain.NewPainting(nil, nil)}, domain.FieldArtist)
	assert.ErrorIs(t, err, domain.ErrMissingField)
}
