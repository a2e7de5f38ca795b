package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

func TestArtistsCmd(t *testing.T) {
	quiz := &mockQuizService{artists: []driving.ArtistSummary{
		{Name: "Claude Monet", Paintings: 12},
		{Name: "Edgar Degas", Paintings: 4},
	}}

	out, err := execute(t, Services{Quiz: quiz}, "artists")

	require.NoError(t, err)
	assert.Equal(t, "Claude Monet  12\nEdgar Degas   4\n\n2 artists\n", out)
}

func TestArtistsCmd_Empty(t *testing.T) {
	out, err := execute(t, Services{Quiz: &mockQuizService{}}, "artists")

	require.NoError(t, err)
	assert.Contains(t, out, "No artists in the index.")
}

func TestArtistsCmd_JSON(t *testing.T) {
	quiz := &mockQuizService{artists: []driving.ArtistSummary{{Name: "Claude Monet", Paintings: 12}}}

	out, err := execute(t, Services{Quiz: quiz}, "artists", "--json")
	require.NoError(t, err)

	var got []driving.ArtistSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, quiz.artists, got)
}

func TestArtistsCmd_Departments(t *testing.T) {
	pipeline := &mockPipelineService{report: testReport()}

	out, err := execute(t, Services{Pipeline: pipeline}, "artists", "--departments")

	require.NoError(t, err)
	assert.Equal(t, "European Paintings\nThe American Wing\n", out)
	require.Len(t, pipeline.calls, 1)
	assert.True(t, pipeline.calls[0].DryRun, "listing departments never writes the index")
}

func TestArtistsCmd_Errors(t *testing.T) {
	_, err := execute(t, Services{}, "artists")
	assert.EqualError(t, err, "quiz service not configured")

	_, err = execute(t, Services{}, "artists", "--departments")
	assert.EqualError(t, err, "pipeline service not configured")

	_, err = execute(t, Services{Quiz: &mockQuizService{err: domain.ErrNotFound}}, "artists")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArtistsCmd_FlagsDoNotCarryOver(t *testing.T) {
	quiz := &mockQuizService{artists: []driving.ArtistSummary{{Name: "Claude Monet", Paintings: 12}}}

	out, err := execute(t, Services{Quiz: quiz}, "artists", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Claude Monet"`)

	out, err = execute(t, Services{Quiz: quiz}, "artists")
	require.NoError(t, err)
	assert.Equal(t, "Claude Monet  12\n\n1 artists\n", out)
}
