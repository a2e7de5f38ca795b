package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistURLIndex_SetKeepsFirstPosition(t *testing.T) {
	x := NewArtistURLIndex()
	x.Set("B", []string{"b1"})
	x.Set("A", []string{"a1"})
	x.Set("B", []string{"b2"})

	assert.Equal(t, []string{"B", "A"}, x.Artists())
	assert.Equal(t, 2, x.Len())

	urls, ok := x.URLs("B")
	require.True(t, ok)
	assert.Equal(t, []string{"b2"}, urls)
}

func TestArtistURLIndex_URLsMissing(t *testing.T) {
	x := NewArtistURLIndex()

	urls, ok := x.URLs("nobody")
	assert.False(t, ok)
	assert.Nil(t, urls)
}

func TestArtistURLIndex_CopiesLists(t *testing.T) {
	x := NewArtistURLIndex()
	in := []string{"u1", "u2"}
	x.Set("A", in)
	in[0] = "changed"

	out, _ := x.URLs("A")
	assert.Equal(t, []string{"u1", "u2"}, out)

	out[1] = "changed"
	again, _ := x.URLs("A")
	assert.Equal(t, "u2", again[1])
}

func TestArtistURLIndex_ZeroValueSet(t *testing.T) {
	var x ArtistURLIndex
	x.Set("A", nil)

	assert.Equal(t, 1, x.Len())
}

func TestArtistURLIndex_Equal(t *testing.T) {
	a := NewArtistURLIndex()
	a.Set("A", []string{"1", "2"})
	a.Set("B", []string{"3"})

	b := NewArtistURLIndex()
	b.Set("A", []string{"1", "2"})
	b.Set("B", []string{"3"})
	assert.True(t, a.Equal(b))

	reordered := NewArtistURLIndex()
	reordered.Set("B", []string{"3"})
	reordered.Set("A", []string{"1", "2"})
	assert.False(t, a.Equal(reordered))

	different := NewArtistURLIndex()
	different.Set("A", []string{"1", "9"})
	different.Set("B", []string{"3"})
	assert.False(t, a.Equal(different))

	assert.False(t, a.Equal(nil))
}

func TestArtistURLIndex_MarshalJSON_PreservesOrder(t *testing.T) {
	x := NewArtistURLIndex()
	x.Set("Zurbarán", []string{"u/1"})
	x.Set("Albrecht Dürer", []string{"u/2", "u/3"})
	x.Set("Empty", nil)

	data, err := json.Marshal(x)
	require.NoError(t, err)
	assert.Equal(t, `{"Zurbarán":["u/1"],"Albrecht Dürer":["u/2","u/3"],"Empty":[]}`, string(data))
}

func TestArtistURLIndex_MarshalIndent(t *testing.T) {
	x := NewArtistURLIndex()
	x.Set("A", []string{"u/1"})

	data, err := json.MarshalIndent(x, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"A\": [\n    \"u/1\"\n  ]\n}", string(data))
}

func TestArtistURLIndex_UnmarshalJSON(t *testing.T) {
	var x ArtistURLIndex
	err := json.Unmarshal([]byte(`{"B": ["b1", "b2"], "A": ["a1"]}`), &x)

	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, x.Artists())
	urls, _ := x.URLs("B")
	assert.Equal(t, []string{"b1", "b2"}, urls)
}

func TestArtistURLIndex_UnmarshalJSON_Null(t *testing.T) {
	var x ArtistURLIndex
	require.NoError(t, json.Unmarshal([]byte(`null`), &x))
	assert.Equal(t, 0, x.Len())
}

func TestArtistURLIndex_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"array", `["a"]`},
		{"non-list value", `{"A": "u/1"}`},
		{"truncated", `{"A": ["u/1"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var x ArtistURLIndex
			assert.Error(t, json.Unmarshal([]byte(tt.data), &x))
		})
	}
}

func TestArtistURLIndex_JSONRoundTripPreservesOrder(t *testing.T) {
	x := NewArtistURLIndex()
	for _, name := range []string{"C", "A", "B"} {
		x.Set(name, []string{name + "/1"})
	}

	data, err := json.Marshal(x)
	require.NoError(t, err)

	var decoded ArtistURLIndex
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, x.Equal(&decoded))
}
