package search

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Request is a flat list of clauses joined by a single combinator.
type Request struct {
	Combinator string   `json:"combinator"`
	Clauses    []Clause `json:"clauses"`
}

// Clause is one filter condition as received from a caller.
type Clause struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// Predicate is the compiled, store-agnostic form of a Request.
type Predicate struct {
	Combinator Combinator
	Fragments  []Fragment
}

// Fragment is one compiled clause. Operand holds the normalized value:
// nil, string, float64 or bool for eq/ne, float64 or time.Time for range
// operators, []any for in, string for contains and bool for exists.
type Fragment struct {
	Field    string
	Path     []string
	Operator Operator
	Operand  any
}

// IsIdentity reports whether the predicate matches every document.
func (p Predicate) IsIdentity() bool {
	return len(p.Fragments) == 0
}

// DecodeRequest reads a JSON search body. Both the combinator/clauses
// names and the orAnd/params aliases are accepted.
func DecodeRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		var se *Error
		if errors.As(err, &se) {
			return Request{}, se
		}
		return Request{}, requestError("malformed body: %v", err)
	}
	return req, nil
}

func (r *Request) UnmarshalJSON(data []byte) error {
	var raw struct {
		Combinator json.RawMessage `json:"combinator"`
		OrAnd      json.RawMessage `json:"orAnd"`
		Clauses    json.RawMessage `json:"clauses"`
		Params     json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return requestError("body must be a JSON object")
	}

	combRaw := firstPresent(raw.Combinator, raw.OrAnd)
	if combRaw != nil {
		var comb string
		if err := json.Unmarshal(combRaw, &comb); err != nil {
			return requestError("combinator must be a string")
		}
		r.Combinator = comb
	}

	clausesRaw := firstPresent(raw.Clauses, raw.Params)
	if clausesRaw == nil {
		return requestError("clauses is required")
	}
	if clausesRaw[0] != '[' {
		return requestError("clauses must be an array")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(clausesRaw, &items); err != nil {
		return requestError("clauses must be an array")
	}
	r.Clauses = make([]Clause, 0, len(items))
	for i, item := range items {
		c, err := decodeClause(i, item)
		if err != nil {
			return err
		}
		r.Clauses = append(r.Clauses, c)
	}
	return nil
}

func decodeClause(index int, data json.RawMessage) (Clause, error) {
	var raw struct {
		Field    json.RawMessage `json:"field"`
		Operator json.RawMessage `json:"operator"`
		Value    json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Clause{}, clauseError(ErrInvalidRequest, index, "", "clause must be an object")
	}

	var c Clause
	if raw.Field != nil {
		if err := json.Unmarshal(raw.Field, &c.Field); err != nil {
			return Clause{}, clauseError(ErrInvalidRequest, index, "", "field must be a string")
		}
	}
	if raw.Operator != nil {
		if err := json.Unmarshal(raw.Operator, &c.Operator); err != nil {
			return Clause{}, clauseError(ErrInvalidRequest, index, c.Field, "operator must be a string")
		}
	}
	if raw.Value != nil {
		dec := json.NewDecoder(bytes.NewReader(raw.Value))
		dec.UseNumber()
		if err := dec.Decode(&c.Value); err != nil {
			return Clause{}, clauseError(ErrInvalidRequest, index, c.Field, "value is not valid JSON")
		}
	}
	return c, nil
}

// firstPresent treats an explicit JSON null like an absent key.
func firstPresent(values ...json.RawMessage) json.RawMessage {
	for _, v := range values {
		trimmed := bytes.TrimSpace(v)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			continue
		}
		return trimmed
	}
	return nil
}
