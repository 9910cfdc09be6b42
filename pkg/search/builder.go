package search

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

type operandBuilder func(c parsedClause, o *options) (any, error)

var operatorTable = map[Operator]operandBuilder{
	OpEq:       buildScalar,
	OpNe:       buildScalar,
	OpGt:       buildRange,
	OpGte:      buildRange,
	OpLt:       buildRange,
	OpLte:      buildRange,
	OpIn:       buildIn,
	OpContains: buildContains,
	OpExists:   buildExists,
}

func buildFragment(c parsedClause, o *options) (Fragment, error) {
	operand, err := operatorTable[c.operator](c, o)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{
		Field:    c.field,
		Path:     c.path,
		Operator: c.operator,
		Operand:  operand,
	}, nil
}

func buildScalar(c parsedClause, _ *options) (any, error) {
	v, ok := normalizeScalar(c.value)
	if !ok {
		return nil, clauseError(ErrInvalidRequest, c.index, c.field, "%s expects a string, number, boolean or null", c.operator)
	}
	return v, nil
}

func buildRange(c parsedClause, o *options) (any, error) {
	switch v := c.value.(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		s := strings.TrimSpace(v)
		if o.isDateField(c.field) {
			t, ok := parseDate(s)
			if !ok {
				return nil, clauseError(ErrCoercion, c.index, c.field, "%q is not an ISO-8601 date", v)
			}
			return t, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && isFinite(f) {
			return f, nil
		}
		if t, ok := parseDate(s); ok {
			return t, nil
		}
		return nil, clauseError(ErrCoercion, c.index, c.field, "%q is neither a number nor an ISO-8601 date", v)
	}

	f, ok := toFloat(c.value)
	if !ok {
		return nil, clauseError(ErrInvalidRequest, c.index, c.field, "%s expects a number or a date string", c.operator)
	}
	if o.isDateField(c.field) {
		return nil, clauseError(ErrCoercion, c.index, c.field, "date field expects an ISO-8601 string, got %v", c.value)
	}
	if !isFinite(f) {
		return nil, clauseError(ErrCoercion, c.index, c.field, "%v is not a finite number", c.value)
	}
	return f, nil
}

func buildIn(c parsedClause, _ *options) (any, error) {
	rv := reflect.ValueOf(c.value)
	if c.value == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, clauseError(ErrInvalidRequest, c.index, c.field, "in expects an array")
	}
	if rv.Len() == 0 {
		return nil, clauseError(ErrInvalidRequest, c.index, c.field, "in expects a non-empty array")
	}
	values := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, ok := normalizeScalar(rv.Index(i).Interface())
		if !ok {
			return nil, clauseError(ErrInvalidRequest, c.index, c.field, "in element %d is not a scalar", i)
		}
		values = append(values, v)
	}
	return values, nil
}

func buildContains(c parsedClause, _ *options) (any, error) {
	s, ok := c.value.(string)
	if !ok {
		return nil, clauseError(ErrInvalidRequest, c.index, c.field, "contains expects a string")
	}
	return s, nil
}

func buildExists(c parsedClause, _ *options) (any, error) {
	b, ok := c.value.(bool)
	if !ok {
		return nil, clauseError(ErrInvalidRequest, c.index, c.field, "exists expects a boolean")
	}
	return b, nil
}

// normalizeScalar maps every accepted scalar to nil, string, bool or float64.
func normalizeScalar(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, true
	case string:
		return x, true
	case bool:
		return x, true
	}
	f, ok := toFloat(v)
	if !ok || !isFinite(f) {
		return nil, false
	}
	return f, true
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
