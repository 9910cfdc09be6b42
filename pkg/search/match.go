package search

import (
	"reflect"
	"strings"
	"time"
)

// Match evaluates the predicate against doc.
func (p Predicate) Match(doc Accessor) bool {
	if p.IsIdentity() {
		return true
	}
	if p.Combinator == Or {
		for _, f := range p.Fragments {
			if f.Match(doc) {
				return true
			}
		}
		return false
	}
	for _, f := range p.Fragments {
		if !f.Match(doc) {
			return false
		}
	}
	return true
}

// Match evaluates one fragment. Array values match when any element does,
// except for exists which only looks at presence.
func (f Fragment) Match(doc Accessor) bool {
	v, present := doc.ValueAt(f.Path)
	if f.Operator.IsRange() {
		return present && matchRange(v, f.Operator, f.Operand)
	}

	switch f.Operator {
	case OpExists:
		return present == f.Operand.(bool)
	case OpEq:
		return matchEq(v, present, f.Operand)
	case OpNe:
		return !matchEq(v, present, f.Operand)
	case OpIn:
		for _, candidate := range f.Operand.([]any) {
			if matchEq(v, present, candidate) {
				return true
			}
		}
		return false
	case OpContains:
		needle := strings.ToLower(f.Operand.(string))
		return anyElement(v, func(e any) bool {
			s, ok := e.(string)
			return ok && strings.Contains(strings.ToLower(s), needle)
		})
	}
	return false
}

func matchRange(v any, op Operator, operand any) bool {
	return anyElement(v, func(e any) bool {
		c, ok := compareRange(e, operand)
		if !ok {
			return false
		}
		switch op {
		case OpGt:
			return c > 0
		case OpGte:
			return c >= 0
		case OpLt:
			return c < 0
		default:
			return c <= 0
		}
	})
}

func matchEq(v any, present bool, operand any) bool {
	if operand == nil {
		return !present || v == nil || anyElement(v, func(e any) bool { return e == nil })
	}
	if !present {
		return false
	}
	if scalarEqual(v, operand) {
		return true
	}
	if isList(v) {
		return anyElement(v, func(e any) bool { return scalarEqual(e, operand) })
	}
	return false
}

func scalarEqual(v, operand any) bool {
	switch want := operand.(type) {
	case string:
		got, ok := v.(string)
		return ok && got == want
	case bool:
		got, ok := v.(bool)
		return ok && got == want
	case float64:
		if _, isBool := v.(bool); isBool {
			return false
		}
		got, ok := toFloat(v)
		return ok && got == want
	}
	return false
}

// compareRange orders v against operand. Numbers only compare with numbers
// and dates only with date strings, so strings never order lexicographically.
func compareRange(v, operand any) (int, bool) {
	switch want := operand.(type) {
	case float64:
		if _, isString := v.(string); isString {
			return 0, false
		}
		if _, isBool := v.(bool); isBool {
			return 0, false
		}
		got, ok := toFloat(v)
		if !ok {
			return 0, false
		}
		return compareFloat(got, want), true
	case time.Time:
		var got time.Time
		switch x := v.(type) {
		case string:
			t, ok := parseDate(x)
			if !ok {
				return 0, false
			}
			got = t
		case time.Time:
			got = x
		default:
			return 0, false
		}
		return got.Compare(want), true
	}
	return 0, false
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func isList(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func anyElement(v any, fn func(any) bool) bool {
	if !isList(v) {
		return fn(v)
	}
	rv := reflect.ValueOf(v)
	for i := 0; i < rv.Len(); i++ {
		if fn(rv.Index(i).Interface()) {
			return true
		}
	}
	return false
}
