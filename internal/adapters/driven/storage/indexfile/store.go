package indexfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.IndexStore = (*Store)(nil)

// Format is an on-disk encoding of the index.
type Format string

const (
	// FormatJSON writes a JSON object indented by two spaces.
	FormatJSON Format = "json"

	// FormatYAML writes a YAML mapping of artist to URL sequence.
	FormatYAML Format = "yaml"
)

// FormatFor returns the format implied by path's extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Store reads and writes the index at a fixed path.
type Store struct {
	path   string
	format Format
}

// NewStore creates a store for path, choosing the format from its extension.
func NewStore(path string) *Store {
	return &Store{path: path, format: FormatFor(path)}
}

// Location returns the file path.
func (s *Store) Location() string {
	return s.path
}

// Format returns the encoding used by the store.
func (s *Store) Format() Format {
	return s.format
}

// Save encodes index and replaces the file. The document is written to a
// temporary file in the same directory first, so readers never observe a
// partial index.
func (s *Store) Save(_ context.Context, index *domain.ArtistURLIndex) error {
	if index == nil {
		index = domain.NewArtistURLIndex()
	}

	data, err := Encode(index, s.format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".oddart-index-*")
	if err != nil {
		return fmt.Errorf("creating temp index file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing index: %w", err)
	}
	return nil
}

// Load reads and decodes the index file.
func (s *Store) Load(_ context.Context) (*domain.ArtistURLIndex, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no artist index at %s", domain.ErrNotFound, s.path)
		}
		return nil, err
	}

	index, err := Decode(data, s.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return index, nil
}

// Encode renders index in format.
func Encode(index *domain.ArtistURLIndex, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return encodeYAML(index)
	case FormatJSON, "":
		return encodeJSON(index)
	default:
		return nil, fmt.Errorf("%w: unknown index format %q", domain.ErrInvalidInput, format)
	}
}

// Decode parses an index document in format.
func Decode(data []byte, format Format) (*domain.ArtistURLIndex, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON, "":
		index := domain.NewArtistURLIndex()
		if err := json.Unmarshal(data, index); err != nil {
			return nil, err
		}
		return index, nil
	default:
		return nil, fmt.Errorf("%w: unknown index format %q", domain.ErrInvalidInput, format)
	}
}

func encodeJSON(index *domain.ArtistURLIndex) ([]byte, error) {
	compact, err := json.Marshal(index)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeYAML(index *domain.ArtistURLIndex) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, artist := range index.Artists() {
		urls, _ := index.URLs(artist)
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, u := range urls {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: u})
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: artist},
			seq,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeYAML(data []byte) (*domain.ArtistURLIndex, error) {
	index := domain.NewArtistURLIndex()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return index, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return index, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: artist index must be a mapping", domain.ErrInvalidInput)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		var urls []string
		if err := value.Decode(&urls); err != nil {
			return nil, fmt.Errorf("decoding urls for %q: %w", key.Value, err)
		}
		index.Set(key.Value, urls)
	}
	return index, nil
}
