package search

import "strings"

// Option customizes compilation for one resource.
type Option func(*options)

type options struct {
	dateFields   map[string]struct{}
	deniedFields map[string]struct{}
}

// WithDateFields declares fields whose range operands are read as dates.
func WithDateFields(fields ...string) Option {
	return func(o *options) {
		for _, f := range fields {
			o.dateFields[f] = struct{}{}
		}
	}
}

// WithDeniedFields refuses clauses on fields, or paths below them, that
// must never be filtered on.
func WithDeniedFields(fields ...string) Option {
	return func(o *options) {
		for _, f := range fields {
			o.deniedFields[f] = struct{}{}
		}
	}
}

func (o *options) isDateField(field string) bool {
	_, ok := o.dateFields[field]
	return ok
}

func (o *options) isDenied(path []string) bool {
	for i := range path {
		if _, ok := o.deniedFields[strings.Join(path[:i+1], pathSeparator)]; ok {
			return true
		}
	}
	return false
}

// Compile validates req and turns it into a Predicate. Any failing clause
// aborts compilation; a partial predicate is never returned.
func Compile(req Request, opts ...Option) (Predicate, error) {
	o := &options{dateFields: map[string]struct{}{}, deniedFields: map[string]struct{}{}}
	for _, opt := range opts {
		opt(o)
	}

	comb, err := parseCombinator(req.Combinator)
	if err != nil {
		return Predicate{}, err
	}

	fragments := make([]Fragment, 0, len(req.Clauses))
	for i, c := range req.Clauses {
		pc, err := parseClause(i, c)
		if err != nil {
			return Predicate{}, err
		}
		if o.isDenied(pc.path) {
			return Predicate{}, clauseError(ErrInvalidRequest, i, pc.field, "field %q cannot be filtered on", pc.field)
		}
		frag, err := buildFragment(pc, o)
		if err != nil {
			return Predicate{}, err
		}
		fragments = append(fragments, frag)
	}

	return Predicate{Combinator: comb, Fragments: fragments}, nil
}

// MustCompile is Compile for requests built in code. It panics on error.
func MustCompile(req Request, opts ...Option) Predicate {
	p, err := Compile(req, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Eq is a shorthand for a single-clause AND predicate on field.
func Eq(field string, value any) Predicate {
	return MustCompile(Request{
		Combinator: string(And),
		Clauses:    []Clause{{Field: field, Operator: string(OpEq), Value: value}},
	})
}
