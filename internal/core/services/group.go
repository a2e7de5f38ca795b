package services

import (
	"strings"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

// FilterByField returns the items whose field equals target, ignoring case,
// in input order. Every item must carry field.
func FilterByField[T domain.FieldValuer](items []T, field, target string) ([]T, error) {
	want := strings.ToLower(target)
	matched := make([]T, 0)
	for _, item := range items {
		value, err := item.Value(field)
		if err != nil {
			return nil, err
		}
		if strings.ToLower(value) == want {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// ObjectIDs returns each painting's object ID in input order, duplicates
// included.
func ObjectIDs(paintings []domain.Painting) ([]string, error) {
	ids := make([]string, len(paintings))
	for i, p := range paintings {
		id, err := p.Value(domain.FieldObjectID)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// GroupIndex groups items by the lower-cased value of one field. Lookup
// returns the same items, in the same order, as FilterByField would.
type GroupIndex[T domain.FieldValuer] struct {
	field  string
	groups map[string][]T
}

// NewGroupIndex builds an index over field in a single pass.
func NewGroupIndex[T domain.FieldValuer](items []T, field string) (*GroupIndex[T], error) {
	groups := make(map[string][]T)
	for _, item := range items {
		value, err := item.Value(field)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(value)
		groups[key] = append(groups[key], item)
	}
	return &GroupIndex[T]{field: field, groups: groups}, nil
}

// Lookup returns the items whose field equals value, ignoring case.
func (g *GroupIndex[T]) Lookup(value string) []T {
	items := g.groups[strings.ToLower(value)]
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Field returns the indexed field name.
func (g *GroupIndex[T]) Field() string {
	return g.field
}

// Len returns the number of distinct folded values.
func (g *GroupIndex[T]) Len() int {
	return len(g.groups)
}
