package services

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/logger"
)

// AggregateOptions configures BuildArtistURLIndex.
type AggregateOptions struct {
	// MinRecords is the minimum number of paintings an artist needs.
	MinRecords int

	// URLBase is prefixed to each object ID.
	URLBase string

	// MultiValueMode is used when collecting an artist's departments.
	MultiValueMode domain.MultiValueMode
}

// AggregateOptionsFrom derives aggregation options from pipeline settings.
func AggregateOptionsFrom(p domain.PipelineSettings) AggregateOptions {
	return AggregateOptions{
		MinRecords:     p.MinRecords,
		URLBase:        p.URLBase,
		MultiValueMode: p.MultiValueMode,
	}
}

func (o AggregateOptions) withDefaults() AggregateOptions {
	if o.MinRecords == 0 {
		o.MinRecords = domain.DefaultMinRecords
	}
	if o.URLBase == "" {
		o.URLBase = domain.DefaultURLBase
	}
	if o.MultiValueMode == "" {
		o.MultiValueMode = domain.MultiValueLiteral
	}
	return o
}

// artistProfile is an artist's full painting subset and the departments it
// spans, computed once per artist.
type artistProfile struct {
	paintings   []domain.Painting
	departments []string
	urls        []string
}

// BuildArtistURLIndex maps each artist with at least MinRecords paintings
// and a painting in one of departments to the URLs of all that artist's
// paintings.
//
// Departments and artists are visited in the order given, departments
// outermost. Department membership and painting count only gate inclusion;
// the URL list always covers the artist's whole subset, so an artist
// qualifying under several departments is assigned the same list each time.
func BuildArtistURLIndex(
	paintings []domain.Painting,
	artists []string,
	departments []string,
	opts AggregateOptions,
) (*domain.ArtistURLIndex, error) {
	opts = opts.withDefaults()
	if opts.MinRecords < 1 {
		return nil, fmt.Errorf("%w: min records must be at least 1, got %d", domain.ErrInvalidInput, opts.MinRecords)
	}

	byArtist, err := NewGroupIndex(paintings, domain.FieldArtist)
	if err != nil {
		return nil, fmt.Errorf("grouping by artist: %w", err)
	}

	profiles := make(map[string]*artistProfile, len(artists))
	profile := func(artist string) (*artistProfile, error) {
		if p, ok := profiles[artist]; ok {
			return p, nil
		}
		subset := byArtist.Lookup(artist)
		p := &artistProfile{paintings: subset}
		if len(subset) >= opts.MinRecords {
			depts, err := UniqueValues(subset, domain.FieldDepartment, opts.MultiValueMode)
			if err != nil {
				return nil, fmt.Errorf("departments of %q: %w", artist, err)
			}
			p.departments = depts
		}
		profiles[artist] = p
		return p, nil
	}

	index := domain.NewArtistURLIndex()
	for _, department := range departments {
		for _, artist := range artists {
			p, err := profile(artist)
			if err != nil {
				return nil, err
			}
			if len(p.paintings) < opts.MinRecords {
				continue
			}
			if !slices.Contains(p.departments, department) {
				continue
			}

			if p.urls == nil {
				ids, err := ObjectIDs(p.paintings)
				if err != nil {
					return nil, fmt.Errorf("object ids of %q: %w", artist, err)
				}
				p.urls = make([]string, len(ids))
				for i, id := range ids {
					p.urls[i] = opts.URLBase + id
				}
			}
			index.Set(artist, p.urls)
		}
	}

	logger.Debug("Artist index: %d of %d artists qualify across %d departments",
		index.Len(), len(artists), len(departments))
	return index, nil
}
