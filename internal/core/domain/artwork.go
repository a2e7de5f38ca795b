package domain

import "strings"

// Artwork is the object metadata shown for a painting during a round.
type Artwork struct {
	// ObjectID is the museum object identifier.
	ObjectID int

	// Title is the painting title.
	Title string

	// Artist is the artist display name.
	Artist string

	// Year is the object end date.
	Year int

	// Medium describes materials, e.g. "Oil on canvas".
	Medium string

	// ImageURL points to a small rendition of the primary image.
	ImageURL string

	// Tags are subject keywords.
	Tags []string
}

// AltText returns a textual description of the painting that does not give
// away the artist.
func (a *Artwork) AltText() string {
	var b strings.Builder
	b.WriteString("Title: ")
	b.WriteString(a.Title)
	b.WriteString(". Medium: ")
	b.WriteString(a.Medium)
	b.WriteString(".")
	if len(a.Tags) > 0 {
		b.WriteString(" Contains: ")
		b.WriteString(strings.Join(a.Tags, ", "))
		b.WriteString(".")
	}
	return b.String()
}
