package driven

import (
	"context"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

// ScoreStore keeps quiz answer history and running totals.
type ScoreStore interface {
	// Record stores an answered round.
	Record(ctx context.Context, outcome domain.Outcome) error

	// Totals returns the running score.
	Totals(ctx context.Context) (domain.Score, error)

	// Recent returns up to limit outcomes, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Outcome, error)

	// Reset clears all history.
	Reset(ctx context.Context) error
}
