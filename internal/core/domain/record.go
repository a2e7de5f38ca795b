package domain

import "strings"

// Field names of the museum object export read by the pipeline.
const (
	FieldIsPublicDomain = "Is Public Domain"
	FieldClassification = "Classification"
	FieldArtist         = "Artist Display Name"
	FieldDepartment     = "Department"
	FieldObjectID       = "Object ID"
	FieldLinkResource   = "Link Resource"
	FieldMedium         = "Medium"
	FieldObjectDate     = "Object Date"
	FieldTags           = "Tags"
	FieldTitle          = "Title"

	// FieldTag is split on MultiValueDelimiter instead of being copied verbatim.
	FieldTag = "Tag"
)

// MultiValueDelimiter joins several logical values inside one field.
const MultiValueDelimiter = "|"

// Record is one decoded row of the museum object export, keyed by field name.
// A Record is immutable: NewRecord copies its input and accessors never
// expose the underlying map.
type Record struct {
	fields map[string]string
}

// NewRecord creates a Record from a field map. The map is copied.
func NewRecord(fields map[string]string) Record {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return Record{fields: copied}
}

// Lookup returns the value of field and whether the record carries it.
func (r Record) Lookup(field string) (string, bool) {
	v, ok := r.fields[field]
	return v, ok
}

// Value returns the value of field, or a *MissingFieldError if absent.
func (r Record) Value(field string) (string, error) {
	v, ok := r.fields[field]
	if !ok {
		return "", &MissingFieldError{Field: field}
	}
	return v, nil
}

// Fields returns a copy of the record's field map.
func (r Record) Fields() map[string]string {
	copied := make(map[string]string, len(r.fields))
	for k, v := range r.fields {
		copied[k] = v
	}
	return copied
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}

// Clone returns a field-for-field copy of the record.
func (r Record) Clone() Record {
	return NewRecord(r.fields)
}

// SplitMultiValue splits a delimiter-joined value into its ordered parts.
// An empty value yields an empty, non-nil slice.
func SplitMultiValue(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, MultiValueDelimiter)
}

// FieldValuer is implemented by Record and Painting. Pipeline stages that
// only read fields accept either.
type FieldValuer interface {
	Value(field string) (string, error)
}
