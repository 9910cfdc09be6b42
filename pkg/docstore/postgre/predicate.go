package postgre

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"logistic-api/pkg/search"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/lib/pq"
)

// isoDatePattern guards ::timestamptz casts so non-date strings compare as
// false instead of failing the query. It accepts the same layouts as
// search date parsing: a date, or a T-separated time with seconds and an
// optional fraction and Z/±hh:mm zone. Zone-less values are read in the
// session time zone, which DSN pins to UTC.
const isoDatePattern = `^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])(T([01]\d|2[0-3]):[0-5]\d:[0-5]\d(\.\d+)?(Z|[+-]\d{2}:\d{2})?)?$`

var rangeSQL = map[search.Operator]string{
	search.OpGt:  ">",
	search.OpGte: ">=",
	search.OpLt:  "<",
	search.OpLte: "<=",
}

// exprWriter accumulates a SQL boolean expression with '?' placeholders.
type exprWriter struct {
	sb   strings.Builder
	args []any
}

func (w *exprWriter) write(s string) {
	w.sb.WriteString(s)
}

func (w *exprWriter) bind(v any) {
	w.sb.WriteString("?")
	w.args = append(w.args, v)
}

// field writes the jsonb value at path, NULL when any segment is absent.
func (w *exprWriter) field(path []string) {
	w.write("(" + quoteIdent(columnData) + " #> CAST(")
	w.bind(pq.StringArray(path))
	w.write(" AS text[]))")
}

// whereMods turns a predicate into query mods. The identity predicate adds none.
func whereMods(p search.Predicate) ([]qm.QueryMod, error) {
	if p.IsIdentity() {
		return nil, nil
	}

	exprs := make([]qm.QueryMod, 0, len(p.Fragments))
	for i, f := range p.Fragments {
		clause, args, err := fragmentSQL(f)
		if err != nil {
			return nil, err
		}
		if i > 0 && p.Combinator == search.Or {
			exprs = append(exprs, qm.Or(clause, args...))
			continue
		}
		exprs = append(exprs, qm.Where(clause, args...))
	}
	return []qm.QueryMod{qm.Expr(exprs...)}, nil
}

func fragmentSQL(f search.Fragment) (string, []any, error) {
	w := &exprWriter{}
	if f.Operator.IsRange() {
		if err := w.rangeCompare(f.Path, rangeSQL[f.Operator], f.Operand); err != nil {
			return "", nil, err
		}
		return w.sb.String(), w.args, nil
	}

	switch f.Operator {
	case search.OpExists:
		w.field(f.Path)
		if f.Operand.(bool) {
			w.write(" IS NOT NULL")
		} else {
			w.write(" IS NULL")
		}
	case search.OpEq:
		if err := w.eq(f.Path, f.Operand); err != nil {
			return "", nil, err
		}
	case search.OpNe:
		w.write("NOT ")
		if err := w.eq(f.Path, f.Operand); err != nil {
			return "", nil, err
		}
	case search.OpIn:
		w.write("(")
		for i, v := range f.Operand.([]any) {
			if i > 0 {
				w.write(" OR ")
			}
			if err := w.eq(f.Path, v); err != nil {
				return "", nil, err
			}
		}
		w.write(")")
	case search.OpContains:
		needle := f.Operand.(string)
		w.anyElement(f.Path, func(x func()) {
			w.write("CASE WHEN jsonb_typeof(")
			x()
			w.write(") = 'string' THEN strpos(lower(")
			x()
			w.write(" #>> '{}'), lower(CAST(")
			w.bind(needle)
			w.write(" AS text))) > 0 ELSE false END")
		})
	default:
		return "", nil, fmt.Errorf("pkg.docstore.postgre: operator %q has no SQL form", f.Operator)
	}

	return w.sb.String(), w.args, nil
}

// eq matches a scalar directly or as an element of an array value. A nil
// operand also matches absent and JSON null values.
func (w *exprWriter) eq(path []string, operand any) error {
	if operand == nil {
		w.write("(")
		w.field(path)
		w.write(" IS NULL OR COALESCE(")
		w.field(path)
		w.write(" = 'null'::jsonb OR ")
		w.field(path)
		w.write(" @> '[null]'::jsonb, false))")
		return nil
	}

	scalar, err := json.Marshal(operand)
	if err != nil {
		return err
	}
	list, err := json.Marshal([]any{operand})
	if err != nil {
		return err
	}
	w.write("COALESCE(")
	w.field(path)
	w.write(" = CAST(")
	w.bind(string(scalar))
	w.write(" AS jsonb) OR ")
	w.field(path)
	w.write(" @> CAST(")
	w.bind(string(list))
	w.write(" AS jsonb), false)")
	return nil
}

func (w *exprWriter) rangeCompare(path []string, op string, operand any) error {
	switch v := operand.(type) {
	case float64:
		w.anyElement(path, func(x func()) {
			w.write("CASE WHEN jsonb_typeof(")
			x()
			w.write(") = 'number' THEN (")
			x()
			w.write(" #>> '{}')::numeric " + op + " ")
			w.bind(v)
			w.write(" ELSE false END")
		})
	case time.Time:
		w.anyElement(path, func(x func()) {
			w.write("CASE WHEN jsonb_typeof(")
			x()
			w.write(") = 'string' AND (")
			x()
			w.write(" #>> '{}') ~ ")
			w.bind(isoDatePattern)
			w.write(" THEN (")
			x()
			w.write(" #>> '{}')::timestamptz " + op + " ")
			w.bind(v)
			w.write(" ELSE false END")
		})
	default:
		return fmt.Errorf("pkg.docstore.postgre: unsupported range operand %T", operand)
	}
	return nil
}

// anyElement applies cond to the value at path, or to each element when
// the value is an array.
func (w *exprWriter) anyElement(path []string, cond func(x func())) {
	w.write("COALESCE(CASE WHEN jsonb_typeof(")
	w.field(path)
	w.write(") = 'array' THEN EXISTS (SELECT 1 FROM jsonb_array_elements(")
	w.field(path)
	w.write(") AS el(v) WHERE ")
	cond(func() { w.write("el.v") })
	w.write(") ELSE ")
	cond(func() { w.field(path) })
	w.write(" END, false)")
}
