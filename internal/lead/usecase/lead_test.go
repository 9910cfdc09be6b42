package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistic-api/internal/lead"
	leadRepo "logistic-api/internal/lead/repository/docstore"
	"logistic-api/internal/model"
	"logistic-api/pkg/docstore/memory"
	pkgLog "logistic-api/pkg/log"
	"logistic-api/pkg/search"
)

func newTestUseCase(t *testing.T) (lead.UseCase, []model.Lead) {
	t.Helper()
	l := pkgLog.NewNop()
	uc := New(l, leadRepo.New(l, memory.New()))

	qualified := true
	oct := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	nov := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
	sc := model.Scope{UserID: "creator-1"}

	var created []model.Lead
	for _, ip := range []lead.CreateInput{
		{
			TotalBedroom: 3,
			MoveDate:     &oct,
			IsQualified:  &qualified,
			Category:     "residential",
			ContactInfo:  &model.ContactInfo{Name: "Sarah", Surname: "Connor", Email: "sarah@example.com"},
			MovingFrom:   &model.Address{City: "Sydney"},
			MovingTo:     &model.Address{City: "Melbourne"},
			SentTo:       []string{"partner-a", "partner-b"},
		},
		{
			TotalBedroom: 1,
			MoveDate:     &nov,
			Category:     "commercial",
			ContactInfo:  &model.ContactInfo{Name: "Kyle", Surname: "Reese"},
			MovingFrom:   &model.Address{City: "Brisbane"},
		},
	} {
		ld, err := uc.Create(context.Background(), sc, ip)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		created = append(created, ld)
	}
	return uc, created
}

func TestSearch(t *testing.T) {
	uc, created := newTestUseCase(t)
	ctx := context.Background()

	tcs := map[string]struct {
		clauses   []search.Clause
		comb      string
		wantFirst string // checked for single results only
		wantTotal int64
		wantErr   error
	}{
		"move_date range": {
			clauses:   []search.Clause{{Field: "move_date", Operator: "gte", Value: "2024-11-01"}},
			wantFirst: "Kyle",
			wantTotal: 1,
		},
		"numeric range": {
			clauses:   []search.Clause{{Field: "total_bedroom", Operator: "gt", Value: "2"}},
			wantFirst: "Sarah",
			wantTotal: 1,
		},
		"nested contains": {
			clauses:   []search.Clause{{Field: "contact_info.surname", Operator: "contains", Value: "REE"}},
			wantFirst: "Kyle",
			wantTotal: 1,
		},
		"array in": {
			clauses:   []search.Clause{{Field: "sent_to", Operator: "in", Value: []any{"partner-b", "partner-z"}}},
			wantFirst: "Sarah",
			wantTotal: 1,
		},
		"null matches unset": {
			clauses:   []search.Clause{{Field: "is_qualified", Operator: "eq", Value: nil}},
			wantFirst: "Kyle",
			wantTotal: 1,
		},
		"missing nested object never matches exists": {
			clauses:   []search.Clause{{Field: "moving_to.city", Operator: "exists", Value: true}},
			wantFirst: "Sarah",
			wantTotal: 1,
		},
		"or across fields": {
			comb: "OR",
			clauses: []search.Clause{
				{Field: "moving_from.city", Operator: "eq", Value: "Brisbane"},
				{Field: "category", Operator: "eq", Value: "residential"},
			},
			wantTotal: 2,
		},
		"created by": {
			clauses:   []search.Clause{{Field: "created_by", Operator: "eq", Value: "creator-1"}},
			wantTotal: 2,
		},
		"bad date": {
			clauses: []search.Clause{{Field: "move_date", Operator: "gte", Value: "not-a-date"}},
			wantErr: search.ErrCoercion,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			comb := tc.comb
			if comb == "" {
				comb = "AND"
			}
			out, err := uc.Search(ctx, model.Scope{}, lead.SearchInput{
				Request: search.Request{Combinator: comb, Clauses: tc.clauses},
			})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Search() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if out.Paginator.Total != tc.wantTotal || len(out.Leads) != int(tc.wantTotal) {
				t.Fatalf("Search() total = %d, leads = %d, want %d", out.Paginator.Total, len(out.Leads), tc.wantTotal)
			}
			if tc.wantTotal > 1 {
				return
			}
			if got := out.Leads[0].ContactInfo.Name; got != tc.wantFirst {
				t.Errorf("Search() first = %q, want %q", got, tc.wantFirst)
			}
		})
	}

	if created[0].CreatedBy != "creator-1" {
		t.Errorf("Create() created_by = %q, want creator-1", created[0].CreatedBy)
	}
}

func TestUpdate(t *testing.T) {
	uc, created := newTestUseCase(t)
	ctx := context.Background()
	id := created[1].ID

	deleted := true
	sentTo := []string{"partner-c"}
	out, err := uc.Update(ctx, model.Scope{}, lead.UpdateInput{ID: id, IsDeleted: &deleted, SentTo: &sentTo})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if out.ModifiedCount != 1 {
		t.Errorf("Update() modified = %d, want 1", out.ModifiedCount)
	}

	got, err := uc.Detail(ctx, model.Scope{}, id)
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}
	if !got.IsDeleted || len(got.SentTo) != 1 || got.SentTo[0] != "partner-c" {
		t.Errorf("Detail() = %+v", got)
	}
	if got.ContactInfo == nil || got.ContactInfo.Name != "Kyle" {
		t.Errorf("Detail() contact_info changed: %+v", got.ContactInfo)
	}

	if _, err := uc.Update(ctx, model.Scope{}, lead.UpdateInput{ID: id}); err != lead.ErrEmptyUpdate {
		t.Errorf("Update() empty error = %v, want %v", err, lead.ErrEmptyUpdate)
	}
	if _, err := uc.Update(ctx, model.Scope{}, lead.UpdateInput{ID: "3f1c5a0e-9a53-4c6b-8f0e-000000000000", IsDeleted: &deleted}); err != lead.ErrUpdateFailed {
		t.Errorf("Update() unknown id error = %v, want %v", err, lead.ErrUpdateFailed)
	}
}

func TestDelete(t *testing.T) {
	uc, created := newTestUseCase(t)
	ctx := context.Background()

	got, err := uc.Delete(ctx, model.Scope{}, created[0].ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got.ID != created[0].ID {
		t.Errorf("Delete() id = %q, want %q", got.ID, created[0].ID)
	}
	if _, err := uc.Detail(ctx, model.Scope{}, created[0].ID); err != lead.ErrLeadNotFound {
		t.Errorf("Detail() after delete error = %v, want %v", err, lead.ErrLeadNotFound)
	}
}
