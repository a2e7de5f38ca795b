package domain

// Painting is a Record restricted to a fixed set of retained fields, with
// the Tag field split into an ordered sequence of values.
//
// Paintings are only produced by the attribution filter, so every Painting
// came from a public-domain painting record with a reliable attribution.
type Painting struct {
	fields map[string]string
	tag    []string
}

// NewPainting creates a Painting from retained fields and split tag values.
// Both arguments are copied.
func NewPainting(fields map[string]string, tag []string) Painting {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	t := make([]string, len(tag))
	copy(t, tag)
	return Painting{fields: copied, tag: t}
}

// Value returns a retained field, or a *MissingFieldError if the field was
// not retained.
func (p Painting) Value(field string) (string, error) {
	v, ok := p.fields[field]
	if !ok {
		return "", &MissingFieldError{Field: field}
	}
	return v, nil
}

// Lookup returns a retained field and whether it is present.
func (p Painting) Lookup(field string) (string, bool) {
	v, ok := p.fields[field]
	return v, ok
}

// ObjectID returns the museum object identifier.
func (p Painting) ObjectID() string {
	return p.fields[FieldObjectID]
}

// Artist returns the artist display name.
func (p Painting) Artist() string {
	return p.fields[FieldArtist]
}

// Department returns the curatorial department.
func (p Painting) Department() string {
	return p.fields[FieldDepartment]
}

// Tag returns a copy of the split Tag values.
func (p Painting) Tag() []string {
	t := make([]string, len(p.tag))
	copy(t, p.tag)
	return t
}

// Fields returns a copy of the retained scalar fields.
func (p Painting) Fields() map[string]string {
	copied := make(map[string]string, len(p.fields))
	for k, v := range p.fields {
		copied[k] = v
	}
	return copied
}
