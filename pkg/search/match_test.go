package search

import (
	"testing"
)

func users() []Document {
	return []Document{
		{"name": "John", "status": "active", "company": "ExampleCorp", "role": "super_admin"},
		{"name": "Jane", "status": "active", "company": "AnotherCorp", "role": "user"},
		{"name": "Alice", "status": "inactive", "company": "ExampleCorp", "role": "manager"},
	}
}

func matchNames(t *testing.T, p Predicate, docs []Document) []string {
	t.Helper()
	var names []string
	for _, d := range docs {
		if p.Match(d) {
			names = append(names, d["name"].(string))
		}
	}
	return names
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPredicateCombinators(t *testing.T) {
	statusActive := Clause{Field: "status", Operator: "eq", Value: "active"}
	companyExample := Clause{Field: "company", Operator: "eq", Value: "ExampleCorp"}

	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{"AND identity", Request{Combinator: "AND"}, []string{"John", "Jane", "Alice"}},
		{"OR identity", Request{Combinator: "OR", Clauses: []Clause{}}, []string{"John", "Jane", "Alice"}},
		{"AND two clauses", Request{Combinator: "AND", Clauses: []Clause{statusActive, companyExample}}, []string{"John"}},
		{"AND commuted", Request{Combinator: "AND", Clauses: []Clause{companyExample, statusActive}}, []string{"John"}},
		{"OR two clauses", Request{Combinator: "OR", Clauses: []Clause{statusActive, companyExample}}, []string{"John", "Jane", "Alice"}},
		{"OR commuted", Request{Combinator: "OR", Clauses: []Clause{companyExample, statusActive}}, []string{"John", "Jane", "Alice"}},
		{"unknown path never matches", Request{Combinator: "AND", Clauses: []Clause{{Field: "nickname", Operator: "eq", Value: "JD"}}}, nil},
		{"unknown path in OR", Request{Combinator: "OR", Clauses: []Clause{{Field: "nickname", Operator: "eq", Value: "JD"}, {Field: "role", Operator: "eq", Value: "user"}}}, []string{"Jane"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.req)
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if got := matchNames(t, p, users()); !equalNames(got, tt.want) {
				t.Errorf("matched %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFragmentMatch(t *testing.T) {
	lead := Document{
		"total_bedroom": 3.0,
		"move_date":     "2024-09-15T00:00:00Z",
		"is_qualified":  nil,
		"category":      "residential",
		"sent_to":       []any{"ops@example.com", "sales@example.com"},
		"contact_info":  map[string]any{"name": "Michael", "surname": "Brown"},
		"moving_from":   map[string]any{"city": "Johannesburg"},
	}

	tests := []struct {
		name   string
		clause Clause
		want   bool
	}{
		{"eq nested", Clause{Field: "contact_info.name", Operator: "eq", Value: "Michael"}, true},
		{"eq nested miss", Clause{Field: "contact_info.name", Operator: "eq", Value: "Laura"}, false},
		{"eq array element", Clause{Field: "sent_to", Operator: "eq", Value: "sales@example.com"}, true},
		{"eq number", Clause{Field: "total_bedroom", Operator: "eq", Value: 3}, true},
		{"eq number vs numeric string", Clause{Field: "total_bedroom", Operator: "eq", Value: "3"}, false},
		{"eq null on null", Clause{Field: "is_qualified", Operator: "eq", Value: nil}, true},
		{"eq null on absent", Clause{Field: "is_deleted", Operator: "eq", Value: nil}, true},
		{"eq null on present", Clause{Field: "category", Operator: "eq", Value: nil}, false},
		{"ne present", Clause{Field: "category", Operator: "ne", Value: "commercial"}, true},
		{"ne equal", Clause{Field: "category", Operator: "ne", Value: "residential"}, false},
		{"ne absent", Clause{Field: "is_deleted", Operator: "ne", Value: true}, true},
		{"ne array element", Clause{Field: "sent_to", Operator: "ne", Value: "ops@example.com"}, false},
		{"gt number", Clause{Field: "total_bedroom", Operator: "gt", Value: 2}, true},
		{"gt numeric string operand", Clause{Field: "total_bedroom", Operator: "gt", Value: "10"}, false},
		{"gte equal", Clause{Field: "total_bedroom", Operator: "gte", Value: 3}, true},
		{"lt number", Clause{Field: "total_bedroom", Operator: "lt", Value: 3}, false},
		{"lte absent", Clause{Field: "floor", Operator: "lte", Value: 3}, false},
		{"range number against string field", Clause{Field: "category", Operator: "gt", Value: 1}, false},
		{"gte date", Clause{Field: "move_date", Operator: "gte", Value: "2024-09-01"}, true},
		{"lt date", Clause{Field: "move_date", Operator: "lt", Value: "2024-09-15"}, false},
		{"lte date same day", Clause{Field: "move_date", Operator: "lte", Value: "2024-09-15T00:00:00Z"}, true},
		{"in hit", Clause{Field: "category", Operator: "in", Value: []any{"commercial", "residential"}}, true},
		{"in miss", Clause{Field: "category", Operator: "in", Value: []any{"commercial"}}, false},
		{"in array field", Clause{Field: "sent_to", Operator: "in", Value: []any{"ops@example.com"}}, true},
		{"in with null on absent", Clause{Field: "is_deleted", Operator: "in", Value: []any{false, nil}}, true},
		{"contains case-insensitive", Clause{Field: "moving_from.city", Operator: "contains", Value: "JOHANNES"}, true},
		{"contains miss", Clause{Field: "moving_from.city", Operator: "contains", Value: "Pretoria"}, false},
		{"contains array element", Clause{Field: "sent_to", Operator: "contains", Value: "SALES@"}, true},
		{"contains on number", Clause{Field: "total_bedroom", Operator: "contains", Value: "3"}, false},
		{"exists true", Clause{Field: "is_qualified", Operator: "exists", Value: true}, true},
		{"exists false on present", Clause{Field: "is_qualified", Operator: "exists", Value: false}, false},
		{"exists false on absent", Clause{Field: "moving_to.city", Operator: "exists", Value: false}, true},
		{"path through scalar", Clause{Field: "category.name", Operator: "exists", Value: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(Request{Combinator: "AND", Clauses: []Clause{tt.clause}}, WithDateFields("move_date"))
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if got := p.Match(lead); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewDocument(t *testing.T) {
	type address struct {
		City string `json:"city"`
	}
	type lead struct {
		Bedrooms int      `json:"total_bedroom"`
		From     address  `json:"moving_from"`
		SentTo   []string `json:"sent_to,omitempty"`
	}

	doc, err := NewDocument(lead{Bedrooms: 2, From: address{City: "Cape Town"}})
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	if v, ok := doc.ValueAt([]string{"moving_from", "city"}); !ok || v != "Cape Town" {
		t.Errorf("ValueAt(moving_from.city) = %v, %v", v, ok)
	}
	if _, ok := doc.ValueAt([]string{"sent_to"}); ok {
		t.Errorf("ValueAt(sent_to) present, want absent")
	}

	var back lead
	if err := doc.Decode(&back); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if back.Bedrooms != 2 || back.From.City != "Cape Town" {
		t.Errorf("Decode() = %+v", back)
	}
}
