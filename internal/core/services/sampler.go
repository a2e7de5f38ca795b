package services

import (
	"fmt"
	"math/rand/v2"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

// AnswerSampler draws quiz answer sets from an artist URL index.
// It is not safe for concurrent use.
type AnswerSampler struct {
	rng *rand.Rand
}

// NewAnswerSampler creates a sampler drawing from src.
func NewAnswerSampler(src rand.Source) *AnswerSampler {
	return &AnswerSampler{rng: rand.New(src)}
}

// NewSeededSampler creates a sampler whose draws are reproducible for seed.
func NewSeededSampler(seed uint64) *AnswerSampler {
	return NewAnswerSampler(rand.NewPCG(seed, seed))
}

// Sample picks two distinct artists, three distinct URLs from the first and
// one URL from the second. The index is not modified.
func (s *AnswerSampler) Sample(index *domain.ArtistURLIndex) (*domain.AnswerSet, error) {
	if index == nil || index.Len() < domain.ArtistsPerDraw {
		n := 0
		if index != nil {
			n = index.Len()
		}
		return nil, fmt.Errorf("%w: have %d", domain.ErrEmptyIndex, n)
	}

	artists := s.sample(index.Artists(), domain.ArtistsPerDraw)
	incorrectArtist, correctArtist := artists[0], artists[1]

	incorrectURLs, _ := index.URLs(incorrectArtist)
	if len(incorrectURLs) < domain.IncorrectAnswerCount {
		return nil, &domain.InsufficientPopulationError{
			Artist: incorrectArtist,
			Want:   domain.IncorrectAnswerCount,
			Have:   len(incorrectURLs),
		}
	}

	correctURLs, _ := index.URLs(correctArtist)
	if len(correctURLs) == 0 {
		return nil, &domain.InsufficientPopulationError{Artist: correctArtist, Want: 1, Have: 0}
	}

	return &domain.AnswerSet{
		IncorrectArtist: incorrectArtist,
		Incorrect:       s.sample(incorrectURLs, domain.IncorrectAnswerCount),
		CorrectArtist:   correctArtist,
		Correct:         correctURLs[s.rng.IntN(len(correctURLs))],
	}, nil
}

// Shuffle pseudo-randomises the order of n elements using swap.
func (s *AnswerSampler) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// sample returns k distinct elements of population chosen uniformly without
// replacement. population is copied; callers guarantee k <= len(population).
func (s *AnswerSampler) sample(population []string, k int) []string {
	pool := make([]string, len(population))
	copy(pool, population)
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
