package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sort"
	"testing"
	"time"

	"logistic-api/pkg/docstore"
	pkgLog "logistic-api/pkg/log"
	"logistic-api/pkg/paginator"
	"logistic-api/pkg/search"

	"github.com/aarondl/sqlboiler/v4/queries"
)

// testDSNEnv names a lib/pq connection string for a disposable database.
const testDSNEnv = "POSTGRES_TEST_DSN"

func openTestStore(t *testing.T) (docstore.Store, string) {
	t.Helper()
	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", testDSNEnv)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("PingContext() error = %v", err)
	}

	collection := fmt.Sprintf("match_%d", time.Now().UnixNano())
	s := New(pkgLog.NewNop(), db)
	if err := s.EnsureCollection(ctx, collection); err != nil {
		t.Fatalf("EnsureCollection() error = %v", err)
	}
	t.Cleanup(func() {
		_, _ = queries.Raw("DROP TABLE IF EXISTS " + quoteIdent(collection)).ExecContext(context.Background(), db)
		_ = db.Close()
	})
	return s, collection
}

func matchDocs() []search.Document {
	return []search.Document{
		{
			"name": "michael", "status": "active", "total_bedroom": 3.0,
			"move_date": "2024-09-15T00:00:00Z", "is_qualified": true,
			"sent_to":      []any{"john@example.com", "jane@example.com"},
			"contact_info": map[string]any{"name": "Michael", "surname": "Brown"},
		},
		{
			"name": "laura", "status": "inactive", "total_bedroom": 2.0,
			"move_date": "2024-09-20", "is_qualified": false,
			"sent_to":      []any{"alice@example.com"},
			"contact_info": map[string]any{"name": "Laura", "surname": "Green"},
		},
		{
			"name": "nobody", "total_bedroom": "3", "move_date": "not a date",
			"is_qualified": nil, "sent_to": []any{},
		},
		{"name": "sparse"},
		{
			"name": "mixed", "status": "active", "total_bedroom": []any{1.0, 4.0},
			"move_date": "2024-09-18 10:00", "sent_to": []any{"SALES@example.com", nil},
		},
	}
}

// TestFindAgreesWithMatch runs each request through SQL and through
// Predicate.Match on the same stored documents and expects the same names.
func TestFindAgreesWithMatch(t *testing.T) {
	s, collection := openTestStore(t)
	ctx := context.Background()

	var stored []search.Document
	for _, d := range matchDocs() {
		rec, err := s.Insert(ctx, collection, docstore.Record{Data: d})
		if err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		stored = append(stored, rec.Data)
	}

	clause := func(field, op string, v any) search.Clause {
		return search.Clause{Field: field, Operator: op, Value: v}
	}
	tests := []struct {
		name    string
		comb    string
		clauses []search.Clause
	}{
		{"identity", "AND", nil},
		{"eq string", "AND", []search.Clause{clause("status", "eq", "active")}},
		{"ne matches absent", "AND", []search.Clause{clause("status", "ne", "active")}},
		{"eq null matches absent and null", "AND", []search.Clause{clause("is_qualified", "eq", nil)}},
		{"eq null matches null element", "AND", []search.Clause{clause("sent_to", "eq", nil)}},
		{"ne null", "AND", []search.Clause{clause("is_qualified", "ne", nil)}},
		{"eq bool false", "AND", []search.Clause{clause("is_qualified", "eq", false)}},
		{"eq number", "AND", []search.Clause{clause("total_bedroom", "eq", 3)}},
		{"eq any array element", "AND", []search.Clause{clause("sent_to", "eq", "jane@example.com")}},
		{"eq any number element", "AND", []search.Clause{clause("total_bedroom", "eq", 4)}},
		{"in with null", "AND", []search.Clause{clause("status", "in", []any{"inactive", nil})}},
		{"contains nested", "AND", []search.Clause{clause("contact_info.name", "contains", "MICH")}},
		{"contains array element", "AND", []search.Clause{clause("sent_to", "contains", "sales")}},
		{"gte numeric string operand", "AND", []search.Clause{clause("total_bedroom", "gte", "2")}},
		{"lt number over array", "AND", []search.Clause{clause("total_bedroom", "lt", 2)}},
		{"date range", "AND", []search.Clause{clause("move_date", "gt", "2024-09-16")}},
		{"date range with zone", "AND", []search.Clause{clause("move_date", "lte", "2024-09-15T02:00:00+02:00")}},
		{"exists true", "AND", []search.Clause{clause("contact_info", "exists", true)}},
		{"exists false", "AND", []search.Clause{clause("status", "exists", false)}},
		{"unknown path", "AND", []search.Clause{clause("nickname", "eq", "x")}},
		{"and", "AND", []search.Clause{clause("status", "eq", "active"), clause("sent_to", "exists", true)}},
		{"or", "OR", []search.Clause{clause("status", "eq", "inactive"), clause("is_qualified", "eq", true)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := search.Compile(search.Request{Combinator: tt.comb, Clauses: tt.clauses}, search.WithDateFields("move_date"))
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}

			var want []string
			for _, d := range stored {
				if p.Match(d) {
					want = append(want, d["name"].(string))
				}
			}
			sort.Strings(want)

			recs, err := s.Find(ctx, collection, p, paginator.PaginateQuery{Page: 1, Limit: 100})
			if err != nil {
				t.Fatalf("Find() error = %v", err)
			}
			var got []string
			for _, r := range recs {
				got = append(got, r.Data["name"].(string))
			}
			sort.Strings(got)

			if fmt.Sprint(got) != fmt.Sprint(want) {
				t.Errorf("Find() = %v, Match() = %v", got, want)
			}

			n, err := s.Count(ctx, collection, p)
			if err != nil {
				t.Fatalf("Count() error = %v", err)
			}
			if n != int64(len(want)) {
				t.Errorf("Count() = %d, want %d", n, len(want))
			}
		})
	}
}
