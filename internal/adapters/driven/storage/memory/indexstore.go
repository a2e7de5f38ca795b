package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driven"
)

// Ensure IndexStore implements the interface.
var _ driven.IndexStore = (*IndexStore)(nil)

// IndexStore is an in-memory implementation of driven.IndexStore.
type IndexStore struct {
	mu    sync.RWMutex
	index *domain.ArtistURLIndex
}

// NewIndexStore creates an empty in-memory index store.
func NewIndexStore() *IndexStore {
	return &IndexStore{}
}

// Save replaces the stored index with a copy of index.
func (s *IndexStore) Save(_ context.Context, index *domain.ArtistURLIndex) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = cloneIndex(index)
	return nil
}

// Load returns a copy of the stored index.
func (s *IndexStore) Load(_ context.Context) (*domain.ArtistURLIndex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return nil, domain.ErrNotFound
	}
	return cloneIndex(s.index), nil
}

// Location returns ":memory:".
func (s *IndexStore) Location() string {
	return ":memory:"
}

func cloneIndex(index *domain.ArtistURLIndex) *domain.ArtistURLIndex {
	clone := domain.NewArtistURLIndex()
	if index == nil {
		return clone
	}
	for _, artist := range index.Artists() {
		urls, _ := index.URLs(artist)
		clone.Set(artist, urls)
	}
	return clone
}
