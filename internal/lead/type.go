package lead

import (
	"time"

	"logistic-api/internal/model"
	"logistic-api/pkg/paginator"
	"logistic-api/pkg/search"
)

type SearchInput struct {
	Request       search.Request
	PaginateQuery paginator.PaginateQuery
}

type SearchOutput struct {
	Leads     []model.Lead
	Paginator paginator.Paginator
}

type CreateInput struct {
	TotalBedroom int
	MoveDate     *time.Time
	IsQualified  *bool
	Category     string
	ContactInfo  *model.ContactInfo
	MovingFrom   *model.Address
	MovingTo     *model.Address
	SentTo       []string
}

// UpdateInput is a partial update; nil fields are left untouched. Nested
// objects are replaced as a whole.
type UpdateInput struct {
	ID           string
	TotalBedroom *int
	MoveDate     *time.Time
	IsQualified  *bool
	IsDeleted    *bool
	Category     *string
	ContactInfo  *model.ContactInfo
	MovingFrom   *model.Address
	MovingTo     *model.Address
	SentTo       *[]string
}

type UpdateOutput struct {
	ModifiedCount int64
}
