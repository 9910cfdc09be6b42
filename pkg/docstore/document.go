package docstore

import (
	"fmt"
	"regexp"
	"time"

	"logistic-api/pkg/search"
)

const (
	FieldID        = "_id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

var collectionPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// ValidateCollection checks that name can be used as a collection identifier.
func ValidateCollection(name string) error {
	if !collectionPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	return nil
}

// StripReserved removes the keys the store owns.
func StripReserved(doc search.Document) {
	delete(doc, FieldID)
	delete(doc, FieldCreatedAt)
	delete(doc, FieldUpdatedAt)
}

// Stamp returns a copy of doc carrying the given timestamps.
func Stamp(doc search.Document, createdAt, updatedAt time.Time) search.Document {
	out := doc.Clone()
	if out == nil {
		out = search.Document{}
	}
	StripReserved(out)
	out[FieldCreatedAt] = FormatTime(createdAt)
	out[FieldUpdatedAt] = FormatTime(updatedAt)
	return out
}

// FormatTime renders t the way timestamps are stored inside documents.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
