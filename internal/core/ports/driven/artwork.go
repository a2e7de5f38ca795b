package driven

import (
	"context"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

// ArtworkFetcher retrieves object metadata for a resource URL from the
// museum collection API.
type ArtworkFetcher interface {
	// Fetch returns metadata for a single object URL.
	Fetch(ctx context.Context, url string) (*domain.Artwork, error)

	// FetchAll returns metadata for every URL, in the same order.
	FetchAll(ctx context.Context, urls []string) ([]*domain.Artwork, error)
}
