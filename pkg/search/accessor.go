package search

import (
	"encoding/json"
)

// Accessor reads a value at a nested path. ok is false when any segment is absent.
type Accessor interface {
	ValueAt(path []string) (value any, ok bool)
}

// Document is a decoded JSON object.
type Document map[string]any

var _ Accessor = Document{}

// NewDocument converts v to a Document through its JSON encoding.
func NewDocument(v any) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Decode fills v from the document through its JSON encoding.
func (d Document) Decode(v any) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func (d Document) ValueAt(path []string) (any, bool) {
	var cur any = map[string]any(d)
	for _, seg := range path {
		var m map[string]any
		switch x := cur.(type) {
		case map[string]any:
			m = x
		case Document:
			m = x
		default:
			return nil, false
		}
		v, ok := m[seg]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return map[string]any(Document(x).Clone())
	case Document:
		return x.Clone()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}
