package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driven"
)

// Ensure ScoreStore implements the interface.
var _ driven.ScoreStore = (*ScoreStore)(nil)

// ScoreStore is an in-memory implementation of driven.ScoreStore.
// History lives for the lifetime of the process.
type ScoreStore struct {
	mu       sync.RWMutex
	outcomes []domain.Outcome
}

// NewScoreStore creates an empty in-memory score store.
func NewScoreStore() *ScoreStore {
	return &ScoreStore{}
}

// Record appends an answered round.
func (s *ScoreStore) Record(_ context.Context, outcome domain.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, outcome)
	return nil
}

// Totals returns the running score.
func (s *ScoreStore) Totals(_ context.Context) (domain.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var score domain.Score
	for _, o := range s.outcomes {
		score = score.Add(o)
	}
	return score, nil
}

// Recent returns up to limit outcomes, newest first. A non-positive limit
// returns everything.
func (s *ScoreStore) Recent(_ context.Context, limit int) ([]domain.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.outcomes)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.Outcome, 0, n)
	for i := len(s.outcomes) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.outcomes[i])
	}
	return result, nil
}

// Reset clears all history.
func (s *ScoreStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = nil
	return nil
}
