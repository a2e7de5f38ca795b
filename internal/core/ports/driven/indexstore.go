package driven

import (
	"context"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

// IndexStore persists the artist URL index between the build and the quiz.
type IndexStore interface {
	// Save replaces the stored index.
	Save(ctx context.Context, index *domain.ArtistURLIndex) error

	// Load returns the stored index.
	// Returns domain.ErrNotFound if no index has been saved.
	Load(ctx context.Context) (*domain.ArtistURLIndex, error)

	// Location describes where the index is stored.
	Location() string
}
