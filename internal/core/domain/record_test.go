package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_CopiesInput(t *testing.T) {
	fields := map[string]string{FieldArtist: "Claude Monet"}
	r := NewRecord(fields)

	fields[FieldArtist] = "changed"

	v, ok := r.Lookup(FieldArtist)
	assert.True(t, ok)
	assert.Equal(t, "Claude Monet", v)
}

func TestRecord_Value(t *testing.T) {
	r := NewRecord(map[string]string{FieldObjectID: "436535", FieldTitle: ""})

	v, err := r.Value(FieldObjectID)
	require.NoError(t, err)
	assert.Equal(t, "436535", v)

	v, err = r.Value(FieldTitle)
	require.NoError(t, err)
	assert.Equal(t, "", v)

	_, err = r.Value(FieldDepartment)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
}

func TestRecord_FieldsReturnsCopy(t *testing.T) {
	r := NewRecord(map[string]string{FieldMedium: "Oil on canvas"})

	fields := r.Fields()
	fields[FieldMedium] = "Tempera"

	v, _ := r.Lookup(FieldMedium)
	assert.Equal(t, "Oil on canvas", v)
	assert.Equal(t, 1, r.Len())
}

func TestRecord_Clone(t *testing.T) {
	r := NewRecord(map[string]string{FieldArtist: "A", FieldDepartment: "D"})
	c := r.Clone()

	assert.Equal(t, r.Fields(), c.Fields())
}

func TestSplitMultiValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "Landscapes", []string{"Landscapes"}},
		{"joined", "Boats|Sea|Men", []string{"Boats", "Sea", "Men"}},
		{"empty token kept", "Boats||Sea", []string{"Boats", "", "Sea"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitMultiValue(tt.value))
		})
	}
}

func TestPainting_Accessors(t *testing.T) {
	tag := []string{"Boats", "Sea"}
	p := NewPainting(map[string]string{
		FieldArtist:     "Winslow Homer",
		FieldDepartment: "The American Wing",
		FieldObjectID:   "11122",
	}, tag)
	tag[0] = "changed"

	assert.Equal(t, "Winslow Homer", p.Artist())
	assert.Equal(t, "The American Wing", p.Department())
	assert.Equal(t, "11122", p.ObjectID())
	assert.Equal(t, []string{"Boats", "Sea"}, p.Tag())

	_, err := p.Value(FieldMedium)
	assert.True(t, errors.Is(err, ErrMissingField))

	got := p.Tag()
	got[0] = "mutated"
	assert.Equal(t, "Boats", p.Tag()[0])
}
