package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driven"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
	"github.com/custodia-labs/oddart/internal/logger"
)

// Ensure PipelineService implements the interface.
var _ driving.PipelineService = (*PipelineService)(nil)

// PipelineService reads the museum export, curates paintings and stores the
// resulting artist URL index.
type PipelineService struct {
	source   driven.RecordSource
	store    driven.IndexStore
	settings domain.PipelineSettings
}

// NewPipelineService creates a new pipeline service.
// The store may be nil, in which case every build behaves as a dry run.
func NewPipelineService(
	source driven.RecordSource,
	store driven.IndexStore,
	settings domain.PipelineSettings,
) *PipelineService {
	return &PipelineService{
		source:   source,
		store:    store,
		settings: settings,
	}
}

// Build runs the full curation pipeline.
func (s *PipelineService) Build(ctx context.Context, opts driving.BuildOptions) (*driving.BuildReport, error) {
	if s.source == nil {
		return nil, errors.New("record source not configured")
	}

	settings := s.settings
	if opts.Pipeline != nil {
		settings = *opts.Pipeline
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline settings: %w", err)
	}

	logger.Section("Curation")
	logger.Debug("Source: %s", s.source.Location())

	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	classified, err := ClassifyPublicDomainPaintings(records)
	if err != nil {
		return nil, fmt.Errorf("classifying records: %w", err)
	}
	logger.Stage("public domain paintings", len(records), len(classified))

	paintings, err := FilterAttributions(classified, settings.RetainFields)
	if err != nil {
		return nil, fmt.Errorf("filtering attributions: %w", err)
	}
	logger.Stage("reliable attributions", len(classified), len(paintings))

	departments, err := UniqueValues(paintings, domain.FieldDepartment, settings.MultiValueMode)
	if err != nil {
		return nil, fmt.Errorf("collecting departments: %w", err)
	}
	artists, err := UniqueValues(paintings, domain.FieldArtist, settings.MultiValueMode)
	if err != nil {
		return nil, fmt.Errorf("collecting artists: %w", err)
	}
	logger.Debug("Distinct departments: %d, artists: %d", len(departments), len(artists))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	index, err := BuildArtistURLIndex(paintings, artists, settings.TargetDepartments, AggregateOptionsFrom(settings))
	if err != nil {
		return nil, fmt.Errorf("building artist index: %w", err)
	}

	report := &driving.BuildReport{
		Index:                 index,
		RecordsRead:           len(records),
		PublicDomainPaintings: len(classified),
		Attributed:            len(paintings),
		Departments:           departments,
		Artists:               artists,
		Source:                s.source.Location(),
	}

	if opts.DryRun || s.store == nil {
		logger.Info("Dry run: index not written")
		return report, nil
	}

	if err := s.store.Save(ctx, index); err != nil {
		return nil, fmt.Errorf("saving artist index: %w", err)
	}
	report.Destination = s.store.Location()
	logger.Info("Wrote %d artists to %s", index.Len(), report.Destination)

	return report, nil
}
