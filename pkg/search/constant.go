package search

// Combinator joins the fragments of a predicate.
type Combinator string

const (
	And Combinator = "AND"
	Or  Combinator = "OR"
)

// Operator names a clause comparison.
type Operator string

const (
	OpEq       Operator = "eq"
	OpNe       Operator = "ne"
	OpGt       Operator = "gt"
	OpGte      Operator = "gte"
	OpLt       Operator = "lt"
	OpLte      Operator = "lte"
	OpIn       Operator = "in"
	OpContains Operator = "contains"
	OpExists   Operator = "exists"
)

// IsRange reports whether op orders values rather than comparing them for equality.
func (op Operator) IsRange() bool {
	switch op {
	case OpGt, OpGte, OpLt, OpLte:
		return true
	}
	return false
}

const pathSeparator = "."

// dateLayouts are tried in order when a value is read as a date.
var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}
