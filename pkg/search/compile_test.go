package search

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestCompileCombinator(t *testing.T) {
	tests := []struct {
		name    string
		comb    string
		want    Combinator
		wantErr bool
	}{
		{"upper AND", "AND", And, false},
		{"lower or", "or", Or, false},
		{"mixed case with spaces", "  And ", And, false},
		{"missing", "", "", true},
		{"unknown", "XOR", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(Request{Combinator: tt.comb})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRequest) {
					t.Errorf("Compile() error = %v, want ErrInvalidRequest", err)
				}
				return
			}
			if p.Combinator != tt.want {
				t.Errorf("Combinator = %v, want %v", p.Combinator, tt.want)
			}
			if !p.IsIdentity() {
				t.Errorf("IsIdentity() = false for empty clauses")
			}
		})
	}
}

func TestCompileClauseErrors(t *testing.T) {
	tests := []struct {
		name     string
		clause   Clause
		opts     []Option
		wantKind error
	}{
		{"missing field", Clause{Operator: "eq", Value: "x"}, nil, ErrInvalidRequest},
		{"blank field", Clause{Field: "   ", Operator: "eq", Value: "x"}, nil, ErrInvalidRequest},
		{"empty path segment", Clause{Field: "contact_info..name", Operator: "eq", Value: "x"}, nil, ErrInvalidRequest},
		{"dollar segment", Clause{Field: "$where", Operator: "eq", Value: "x"}, nil, ErrInvalidRequest},
		{"missing operator", Clause{Field: "status", Value: "x"}, nil, ErrInvalidRequest},
		{"unknown operator", Clause{Field: "status", Operator: "regexx", Value: "x"}, nil, ErrUnsupportedOperator},
		{"eq with object", Clause{Field: "status", Operator: "eq", Value: map[string]any{"a": 1}}, nil, ErrInvalidRequest},
		{"ne with array", Clause{Field: "status", Operator: "ne", Value: []any{"a"}}, nil, ErrInvalidRequest},
		{"in with scalar", Clause{Field: "status", Operator: "in", Value: "active"}, nil, ErrInvalidRequest},
		{"in empty", Clause{Field: "status", Operator: "in", Value: []any{}}, nil, ErrInvalidRequest},
		{"in nested array", Clause{Field: "status", Operator: "in", Value: []any{[]any{"a"}}}, nil, ErrInvalidRequest},
		{"contains with number", Clause{Field: "name", Operator: "contains", Value: 3.0}, nil, ErrInvalidRequest},
		{"exists with string", Clause{Field: "name", Operator: "exists", Value: "yes"}, nil, ErrInvalidRequest},
		{"gt with bool", Clause{Field: "total_bedroom", Operator: "gt", Value: true}, nil, ErrInvalidRequest},
		{"gt with garbage string", Clause{Field: "total_bedroom", Operator: "gt", Value: "many"}, nil, ErrCoercion},
		{"gte bad date", Clause{Field: "move_date", Operator: "gte", Value: "not-a-date"}, []Option{WithDateFields("move_date")}, ErrCoercion},
		{"gte number on date field", Clause{Field: "move_date", Operator: "gte", Value: 5.0}, []Option{WithDateFields("move_date")}, ErrCoercion},
		{"lt NaN", Clause{Field: "total_bedroom", Operator: "lt", Value: "NaN"}, nil, ErrCoercion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(Request{Combinator: "AND", Clauses: []Clause{tt.clause}}, tt.opts...)
			if err == nil {
				t.Fatalf("Compile() error = nil, want %v", tt.wantKind)
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("Compile() error = %v, want kind %v", err, tt.wantKind)
			}
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("Compile() error = %v does not match ErrInvalidRequest", err)
			}
			var se *Error
			if !errors.As(err, &se) || se.Index != 0 {
				t.Errorf("Compile() error = %#v, want clause index 0", err)
			}
		})
	}
}

func TestCompileFailureNamesClause(t *testing.T) {
	req := Request{Combinator: "OR", Clauses: []Clause{
		{Field: "status", Operator: "eq", Value: "active"},
		{Field: "company", Operator: "like", Value: "Example"},
	}}
	p, err := Compile(req)
	if !errors.Is(err, ErrUnsupportedOperator) {
		t.Fatalf("Compile() error = %v, want ErrUnsupportedOperator", err)
	}
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("Compile() error type = %T, want *Error", err)
	}
	if se.Index != 1 || se.Field != "company" {
		t.Errorf("Error = {Index: %d, Field: %q}, want {1, company}", se.Index, se.Field)
	}
	if len(p.Fragments) != 0 {
		t.Errorf("partial predicate returned: %+v", p)
	}
}

func TestCompileNormalization(t *testing.T) {
	moveDate := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)
	req := Request{Combinator: "and", Clauses: []Clause{
		{Field: " contact_info.name ", Operator: "EQ", Value: "Michael"},
		{Field: "total_bedroom", Operator: "Gte", Value: "3"},
		{Field: "move_date", Operator: "lte", Value: "2024-09-15"},
		{Field: "category", Operator: "in", Value: []string{"residential", "commercial"}},
		{Field: "is_qualified", Operator: "eq", Value: nil},
		{Field: "sent_to", Operator: "exists", Value: false},
		{Field: "total_bedroom", Operator: "lt", Value: 10},
	}}

	p, err := Compile(req, WithDateFields("move_date"))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	want := Predicate{Combinator: And, Fragments: []Fragment{
		{Field: "contact_info.name", Path: []string{"contact_info", "name"}, Operator: OpEq, Operand: "Michael"},
		{Field: "total_bedroom", Path: []string{"total_bedroom"}, Operator: OpGte, Operand: 3.0},
		{Field: "move_date", Path: []string{"move_date"}, Operator: OpLte, Operand: moveDate},
		{Field: "category", Path: []string{"category"}, Operator: OpIn, Operand: []any{"residential", "commercial"}},
		{Field: "is_qualified", Path: []string{"is_qualified"}, Operator: OpEq, Operand: nil},
		{Field: "sent_to", Path: []string{"sent_to"}, Operator: OpExists, Operand: false},
		{Field: "total_bedroom", Path: []string{"total_bedroom"}, Operator: OpLt, Operand: 10.0},
	}}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Compile() =\n%+v\nwant\n%+v", p, want)
	}
}

func TestCompileDeterministic(t *testing.T) {
	req := Request{Combinator: "OR", Clauses: []Clause{
		{Field: "status", Operator: "eq", Value: "active"},
		{Field: "createdAt", Operator: "gt", Value: "2024-01-01T00:00:00Z"},
		{Field: "role", Operator: "in", Value: []any{"admin", "user"}},
	}}
	first, err := Compile(req, WithDateFields("createdAt"))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Compile(req, WithDateFields("createdAt"))
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Compile() not deterministic:\n%+v\n%+v", first, again)
		}
	}
}

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantComb string
		wantLen  int
		wantErr  bool
	}{
		{"canonical names", `{"combinator":"AND","clauses":[{"field":"status","operator":"eq","value":"active"}]}`, "AND", 1, false},
		{"legacy aliases", `{"orAnd":"or","params":[{"field":"a","operator":"eq","value":1},{"field":"b","operator":"exists","value":true}]}`, "or", 2, false},
		{"empty clauses", `{"combinator":"OR","clauses":[]}`, "OR", 0, false},
		{"missing combinator decodes", `{"clauses":[]}`, "", 0, false},
		{"clauses absent", `{"combinator":"AND"}`, "", 0, true},
		{"clauses null", `{"combinator":"AND","clauses":null}`, "", 0, true},
		{"clauses object", `{"combinator":"AND","clauses":{"field":"a"}}`, "", 0, true},
		{"clauses string", `{"combinator":"AND","clauses":"status=active"}`, "", 0, true},
		{"combinator number", `{"combinator":1,"clauses":[]}`, "", 0, true},
		{"field number", `{"combinator":"AND","clauses":[{"field":1,"operator":"eq"}]}`, "", 0, true},
		{"clause not object", `{"combinator":"AND","clauses":["status"]}`, "", 0, true},
		{"not json", `combinator=AND`, "", 0, true},
		{"array body", `[]`, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeRequest([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRequest) {
					t.Errorf("DecodeRequest() error = %v, want ErrInvalidRequest", err)
				}
				return
			}
			if req.Combinator != tt.wantComb {
				t.Errorf("Combinator = %q, want %q", req.Combinator, tt.wantComb)
			}
			if len(req.Clauses) != tt.wantLen {
				t.Errorf("len(Clauses) = %d, want %d", len(req.Clauses), tt.wantLen)
			}
		})
	}
}

func TestDecodeRequestKeepsNumbers(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"combinator":"AND","clauses":[{"field":"total_bedroom","operator":"gte","value":3}]}`))
	if err != nil {
		t.Fatalf("DecodeRequest() error = %v", err)
	}
	p, err := Compile(req)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if got := p.Fragments[0].Operand; got != 3.0 {
		t.Errorf("Operand = %#v, want 3.0", got)
	}
}

func TestCompileDeniedFields(t *testing.T) {
	tests := []struct {
		name      string
		clauses   []Clause
		wantErr   bool
		wantIndex int
	}{
		{"denied field", []Clause{{Field: "password", Operator: "contains", Value: "$2a$"}}, true, 0},
		{"denied field after allowed one", []Clause{
			{Field: "name", Operator: "eq", Value: "John"},
			{Field: "password", Operator: "exists", Value: true},
		}, true, 1},
		{"path below denied field", []Clause{{Field: "password.hash", Operator: "eq", Value: "x"}}, true, 0},
		{"field sharing the prefix", []Clause{{Field: "passwordHint", Operator: "eq", Value: "x"}}, false, 0},
		{"allowed field", []Clause{{Field: "name", Operator: "eq", Value: "John"}}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(Request{Combinator: "AND", Clauses: tt.clauses}, WithDeniedFields("password"))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("Compile() error = %v, want ErrInvalidRequest", err)
			}
			var se *Error
			if !errors.As(err, &se) || se.Index != tt.wantIndex {
				t.Errorf("Compile() error = %#v, want clause index %d", err, tt.wantIndex)
			}
		})
	}
}
