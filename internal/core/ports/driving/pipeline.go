package driving

import (
	"context"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

// BuildReport summarises one curation run.
type BuildReport struct {
	// Index is the resulting artist URL index.
	Index *domain.ArtistURLIndex

	// RecordsRead is the number of records supplied by the source.
	RecordsRead int

	// PublicDomainPaintings passed the classifier.
	PublicDomainPaintings int

	// Attributed passed the attribution filter.
	Attributed int

	// Departments are all distinct departments of the curated paintings.
	Departments []string

	// Artists are all distinct artists of the curated paintings.
	Artists []string

	// Source and Destination describe where records came from and where
	// the index was written. Destination is empty for dry runs.
	Source      string
	Destination string
}

// BuildOptions adjusts a single curation run.
type BuildOptions struct {
	// DryRun skips writing the index.
	DryRun bool

	// Pipeline overrides the configured pipeline settings when non-nil.
	Pipeline *domain.PipelineSettings
}

// PipelineService runs the curation pipeline.
type PipelineService interface {
	// Build reads records, curates paintings and writes the artist URL index.
	Build(ctx context.Context, opts BuildOptions) (*BuildReport, error)
}
