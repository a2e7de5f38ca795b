package services

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

func indexOf(sizes map[string]int, order ...string) *domain.ArtistURLIndex {
	index := domain.NewArtistURLIndex()
	for _, artist := range order {
		var list []string
		for i := 0; i < sizes[artist]; i++ {
			list = append(list, fmt.Sprintf("%s%s-%d", base, artist, i))
		}
		index.Set(artist, list)
	}
	return index
}

func TestAnswerSampler_Sample(t *testing.T) {
	index := indexOf(map[string]int{"A": 5, "B": 5}, "A", "B")
	sampler := NewSeededSampler(5)

	set, err := sampler.Sample(index)
	require.NoError(t, err)

	assert.NotEqual(t, set.IncorrectArtist, set.CorrectArtist)
	require.Len(t, set.Incorrect, domain.IncorrectAnswerCount)

	incorrectURLs, _ := index.URLs(set.IncorrectArtist)
	seen := map[string]bool{}
	for _, u := range set.Incorrect {
		assert.Contains(t, incorrectURLs, u)
		assert.False(t, seen[u], "duplicate %s", u)
		seen[u] = true
	}
	correctURLs, _ := index.URLs(set.CorrectArtist)
	assert.Contains(t, correctURLs, set.Correct)
}

func TestAnswerSampler_Deterministic(t *testing.T) {
	index := indexOf(map[string]int{"A": 5, "B": 5}, "A", "B")

	first, err := NewSeededSampler(42).Sample(index)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := NewSeededSampler(42).Sample(index)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnswerSampler_InjectedSource(t *testing.T) {
	index := indexOf(map[string]int{"A": 5, "B": 5, "C": 4}, "A", "B", "C")

	a := NewAnswerSampler(rand.NewPCG(1, 2))
	b := NewAnswerSampler(rand.NewPCG(1, 2))
	for i := 0; i < 10; i++ {
		x, err := a.Sample(index)
		require.NoError(t, err)
		y, err := b.Sample(index)
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestAnswerSampler_DoesNotMutateIndex(t *testing.T) {
	index := indexOf(map[string]int{"A": 5, "B": 5}, "A", "B")
	before := indexOf(map[string]int{"A": 5, "B": 5}, "A", "B")

	sampler := NewSeededSampler(7)
	for i := 0; i < 20; i++ {
		_, err := sampler.Sample(index)
		require.NoError(t, err)
	}
	assert.True(t, before.Equal(index))
}

func TestAnswerSampler_EmptyIndex(t *testing.T) {
	sampler := NewSeededSampler(1)

	_, err := sampler.Sample(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyIndex)

	_, err = sampler.Sample(domain.NewArtistURLIndex())
	assert.ErrorIs(t, err, domain.ErrEmptyIndex)

	_, err = sampler.Sample(indexOf(map[string]int{"A": 5}, "A"))
	assert.ErrorIs(t, err, domain.ErrEmptyIndex)
	assert.Contains(t, err.Error(), "have 1")
}

func TestAnswerSampler_InsufficientPopulation(t *testing.T) {
	// With only two artists, both are drawn; whichever is first must have
	// three URLs.
	index := indexOf(map[string]int{"A": 2, "B": 2}, "A", "B")

	_, err := NewSeededSampler(3).Sample(index)

	var insufficient *domain.InsufficientPopulationError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, domain.IncorrectAnswerCount, insufficient.Want)
	assert.Equal(t, 2, insufficient.Have)
	assert.ErrorIs(t, err, domain.ErrInsufficientPopulation)
}

func TestAnswerSampler_EmptyCorrectList(t *testing.T) {
	index := indexOf(map[string]int{"A": 3, "B": 0}, "A", "B")

	sampler := NewSeededSampler(9)
	for i := 0; i < 10; i++ {
		_, err := sampler.Sample(index)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientPopulation)
	}
}

func TestAnswerSampler_Shuffle(t *testing.T) {
	a := NewSeededSampler(11)
	b := NewSeededSampler(11)

	x := []int{0, 1, 2, 3}
	y := []int{0, 1, 2, 3}
	a.Shuffle(len(x), func(i, j int) { x[i], x[j] = x[j], x[i] })
	b.Shuffle(len(y), func(i, j int) { y[i], y[j] = y[j], y[i] })

	assert.Equal(t, x, y)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, x)
}
