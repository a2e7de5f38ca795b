package indexfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

const base = domain.DefaultURLBase

func sampleIndex() *domain.ArtistURLIndex {
	index := domain.NewArtistURLIndex()
	index.Set("Vincent van Gogh", []string{base + "436524", base + "436527", base + "436528"})
	index.Set("Claude Monet", []string{base + "437112", base + "437122", base + "437133"})
	return index
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("painting_urls.json"))
	assert.Equal(t, FormatYAML, FormatFor("index.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("INDEX.YML"))
	assert.Equal(t, FormatJSON, FormatFor("index"))
}

func TestEncode_JSON(t *testing.T) {
	index := domain.NewArtistURLIndex()
	index.Set("B", []string{"u1"})
	index.Set("A", []string{"u2", "u3"})

	data, err := Encode(index, FormatJSON)
	require.NoError(t, err)

	want := "{\n  \"B\": [\n    \"u1\"\n  ],\n  \"A\": [\n    \"u2\",\n    \"u3\"\n  ]\n}\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_YAML(t *testing.T) {
	index := domain.NewArtistURLIndex()
	index.Set("B", []string{"u1"})
	index.Set("A", []string{"u2", "u3"})

	data, err := Encode(index, FormatYAML)
	require.NoError(t, err)

	want := "B:\n  - u1\nA:\n  - u2\n  - u3\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("YAML mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(sampleIndex(), Format("xml"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Decode([]byte("{}"), Format("xml"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecode_YAML(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		index, err := Decode([]byte(""), FormatYAML)
		require.NoError(t, err)
		assert.Zero(t, index.Len())
	})

	t.Run("null", func(t *testing.T) {
		index, err := Decode([]byte("~\n"), FormatYAML)
		require.NoError(t, err)
		assert.Zero(t, index.Len())
	})

	t.Run("not a mapping", func(t *testing.T) {
		_, err := Decode([]byte("- a\n- b\n"), FormatYAML)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("bad urls", func(t *testing.T) {
		_, err := Decode([]byte("A:\n  x: y\n"), FormatYAML)
		assert.Error(t, err)
	})
}

func TestStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"painting_urls.json", "painting_urls.yaml"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := NewStore(filepath.Join(t.TempDir(), "out", name))

			require.NoError(t, store.Save(ctx, sampleIndex()))

			loaded, err := store.Load(ctx)
			require.NoError(t, err)
			assert.True(t, sampleIndex().Equal(loaded))
			assert.Equal(t, []string{"Vincent van Gogh", "Claude Monet"}, loaded.Artists())
		})
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "painting_urls.json"))

	require.NoError(t, store.Save(ctx, sampleIndex()))
	require.NoError(t, store.Save(ctx, domain.NewArtistURLIndex()))

	data, err := os.ReadFile(store.Location())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(store.Location()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "painting_urls.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "painting_urls.json")
	require.NoError(t, os.WriteFile(path, []byte(`["not", "an", "object"]`), 0600))

	_, err := NewStore(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
