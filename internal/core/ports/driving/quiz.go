package driving

import (
	"context"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

// ArtistSummary describes one artist of the index.
type ArtistSummary struct {
	Name      string
	Paintings int
}

// QuizService draws and scores "odd art out" rounds.
type QuizService interface {
	// Draw samples an answer set from the stored index.
	Draw(ctx context.Context) (*domain.AnswerSet, error)

	// NewRound draws an answer set and shuffles it into a playable round.
	// Artwork metadata is attached when a fetcher is configured.
	NewRound(ctx context.Context) (*domain.Round, error)

	// Answer checks a choice and records the outcome.
	Answer(ctx context.Context, round *domain.Round, choice int) (*domain.Outcome, error)

	// Score returns running totals.
	Score(ctx context.Context) (domain.Score, error)

	// History returns up to limit recent outcomes, newest first.
	// A limit of zero or less returns all of them.
	History(ctx context.Context, limit int) ([]domain.Outcome, error)

	// ResetScore clears answer history.
	ResetScore(ctx context.Context) error

	// Index returns the stored artist URL index.
	Index(ctx context.Context) (*domain.ArtistURLIndex, error)

	// Artists lists the artists of the stored index in index order.
	Artists(ctx context.Context) ([]ArtistSummary, error)
}
