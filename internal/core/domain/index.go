package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ArtistURLIndex maps an artist display name to the URLs of that artist's
// qualifying paintings. Keys keep their first insertion order, so encoding
// an index built from the same input always yields the same document.
type ArtistURLIndex struct {
	artists []string
	urls    map[string][]string
}

// NewArtistURLIndex creates an empty index.
func NewArtistURLIndex() *ArtistURLIndex {
	return &ArtistURLIndex{
		urls: make(map[string][]string),
	}
}

// Set assigns the URL list for artist. Overwriting an existing artist keeps
// its original position. The list is copied.
func (x *ArtistURLIndex) Set(artist string, urls []string) {
	if x.urls == nil {
		x.urls = make(map[string][]string)
	}
	if _, ok := x.urls[artist]; !ok {
		x.artists = append(x.artists, artist)
	}
	copied := make([]string, len(urls))
	copy(copied, urls)
	x.urls[artist] = copied
}

// URLs returns a copy of the URL list for artist.
func (x *ArtistURLIndex) URLs(artist string) ([]string, bool) {
	urls, ok := x.urls[artist]
	if !ok {
		return nil, false
	}
	copied := make([]string, len(urls))
	copy(copied, urls)
	return copied, true
}

// Artists returns the artist names in insertion order.
func (x *ArtistURLIndex) Artists() []string {
	artists := make([]string, len(x.artists))
	copy(artists, x.artists)
	return artists
}

// Len returns the number of artists in the index.
func (x *ArtistURLIndex) Len() int {
	return len(x.artists)
}

// Equal reports whether both indexes hold the same artists, in the same
// order, with the same URL lists.
func (x *ArtistURLIndex) Equal(other *ArtistURLIndex) bool {
	if x == nil || other == nil {
		return x == other
	}
	if len(x.artists) != len(other.artists) {
		return false
	}
	for i, artist := range x.artists {
		if other.artists[i] != artist {
			return false
		}
		a, b := x.urls[artist], other.urls[artist]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// MarshalJSON encodes the index as a JSON object in insertion order.
func (x *ArtistURLIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, artist := range x.artists {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(artist)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		urls := x.urls[artist]
		if urls == nil {
			urls = []string{}
		}
		val, err := json.Marshal(urls)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of artist to URL list, keeping the
// document's key order.
func (x *ArtistURLIndex) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding artist index: %w", err)
	}

	*x = ArtistURLIndex{urls: make(map[string][]string)}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decoding artist index: %w: expected object", ErrInvalidInput)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding artist index: %w", err)
		}
		artist, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decoding artist index: %w: non-string key", ErrInvalidInput)
		}

		var urls []string
		if err := dec.Decode(&urls); err != nil {
			return fmt.Errorf("decoding urls for %q: %w", artist, err)
		}
		x.Set(artist, urls)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding artist index: %w", err)
	}
	return nil
}
