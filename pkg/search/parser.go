package search

import (
	"strings"
)

type parsedClause struct {
	index    int
	field    string
	path     []string
	operator Operator
	value    any
}

func parseCombinator(raw string) (Combinator, error) {
	switch Combinator(strings.ToUpper(strings.TrimSpace(raw))) {
	case And:
		return And, nil
	case Or:
		return Or, nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", requestError("combinator is required and must be AND or OR")
	}
	return "", requestError("combinator %q must be AND or OR", raw)
}

func parseClause(index int, c Clause) (parsedClause, error) {
	field := strings.TrimSpace(c.Field)
	if field == "" {
		return parsedClause{}, clauseError(ErrInvalidRequest, index, "", "field is required")
	}
	path, err := parsePath(field)
	if err != nil {
		return parsedClause{}, clauseError(ErrInvalidRequest, index, field, "%s", err.Reason)
	}

	rawOp := strings.ToLower(strings.TrimSpace(c.Operator))
	if rawOp == "" {
		return parsedClause{}, clauseError(ErrInvalidRequest, index, field, "operator is required")
	}
	op := Operator(rawOp)
	if _, ok := operatorTable[op]; !ok {
		return parsedClause{}, clauseError(ErrUnsupportedOperator, index, field, "operator %q is not supported", c.Operator)
	}

	return parsedClause{
		index:    index,
		field:    field,
		path:     path,
		operator: op,
		value:    c.Value,
	}, nil
}

// parsePath splits a dotted field name into segments. Segments starting
// with '$' are refused so a field can never be read as a store operator.
func parsePath(field string) ([]string, *Error) {
	segments := strings.Split(field, pathSeparator)
	for _, s := range segments {
		if s == "" {
			return nil, &Error{Reason: "field path has an empty segment"}
		}
		if strings.HasPrefix(s, "$") {
			return nil, &Error{Reason: "field path segment must not start with '$'"}
		}
	}
	return segments, nil
}
