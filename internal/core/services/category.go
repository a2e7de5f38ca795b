package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

// UniqueValues returns the distinct non-empty values of field across items,
// sorted ascending. Delimiter-joined values are expanded according to mode;
// see domain.MultiValueMode.
func UniqueValues[T domain.FieldValuer](items []T, field string, mode domain.MultiValueMode) ([]string, error) {
	values := []string{}
	seen := make(map[string]struct{})
	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	for _, item := range items {
		value, err := item.Value(field)
		if err != nil {
			return nil, err
		}
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		if !strings.Contains(value, domain.MultiValueDelimiter) {
			add(value)
			continue
		}

		for _, token := range domain.SplitMultiValue(value) {
			switch mode {
			case domain.MultiValueTokens:
				if token != "" {
					add(token)
				}
			default:
				// A token split from value is always a substring of it.
				if !strings.Contains(value, token) {
					add(token)
				}
			}
		}
	}

	sort.Strings(values)
	return values, nil
}
