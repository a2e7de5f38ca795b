package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRound() *Round {
	return &Round{
		ID: "round-1",
		Choices: []Choice{
			{URL: "u/1"},
			{URL: "u/2"},
			{URL: "u/3", Correct: true},
			{URL: "u/4"},
		},
	}
}

func TestRound_CorrectIndex(t *testing.T) {
	assert.Equal(t, 2, testRound().CorrectIndex())
	assert.Equal(t, -1, (&Round{}).CorrectIndex())
}

func TestRound_Check(t *testing.T) {
	r := testRound()

	ok, err := r.Check(2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Check(0)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.Check(4)
	assert.True(t, errors.Is(err, ErrInvalidChoice))

	_, err = r.Check(-1)
	assert.True(t, errors.Is(err, ErrInvalidChoice))
}

func TestScore_Add(t *testing.T) {
	var s Score
	s = s.Add(Outcome{Correct: true})
	s = s.Add(Outcome{Correct: false})
	s = s.Add(Outcome{Correct: true})

	assert.Equal(t, 2, s.Correct)
	assert.Equal(t, 1, s.Incorrect)
	assert.Equal(t, 3, s.Total())
}

func TestScore_Labels(t *testing.T) {
	assert.Equal(t, "Correct Guess", Score{Correct: 0}.CorrectLabel())
	assert.Equal(t, "Correct Guess", Score{Correct: 1}.CorrectLabel())
	assert.Equal(t, "Correct Guesses", Score{Correct: 2}.CorrectLabel())
	assert.Equal(t, "Incorrect Guess", Score{Incorrect: 1}.IncorrectLabel())
	assert.Equal(t, "Incorrect Guesses", Score{Incorrect: 5}.IncorrectLabel())
}

func TestArtwork_AltText(t *testing.T) {
	a := &Artwork{Title: "Wheat Field with Cypresses", Medium: "Oil on canvas", Tags: []string{"Landscapes", "Cypresses"}}
	assert.Equal(t, "Title: Wheat Field with Cypresses. Medium: Oil on canvas. Contains: Landscapes, Cypresses.", a.AltText())

	bare := &Artwork{Title: "Untitled", Medium: "Tempera"}
	assert.Equal(t, "Title: Untitled. Medium: Tempera.", bare.AltText())
}
