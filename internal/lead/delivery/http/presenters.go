package http

import (
	"time"

	"logistic-api/internal/lead"
	"logistic-api/internal/model"
	"logistic-api/pkg/errors"
)

// Accepted move_date layouts.
var moveDateLayouts = []string{time.RFC3339Nano, "2006-01-02"}

func parseMoveDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	for _, layout := range moveDateLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errors.NewValidationError(400, "move_date", "must be a date (YYYY-MM-DD or RFC3339)")
}

// --- Request DTOs ---

// searchReq documents the search body.
type searchReq struct {
	Combinator string      `json:"combinator" example:"AND"`
	Clauses    []clauseReq `json:"clauses"`
}

type clauseReq struct {
	Field    string `json:"field" example:"move_date"`
	Operator string `json:"operator" example:"gte" enums:"eq,ne,gt,gte,lt,lte,in,contains,exists"`
	Value    any    `json:"value" swaggertype:"string" example:"2024-10-01"`
}

type contactInfoReq struct {
	Name          string `json:"name" validate:"omitempty,max=100"`
	Surname       string `json:"surname" validate:"omitempty,max=100"`
	Title         string `json:"title" validate:"omitempty,max=50"`
	Email         string `json:"email" validate:"omitempty,email"`
	WhatsappPhone string `json:"whatsapp_phone" validate:"omitempty,max=30"`
	Phone         string `json:"phone" validate:"omitempty,max=30"`
}

func (r *contactInfoReq) toModel() *model.ContactInfo {
	if r == nil {
		return nil
	}
	ci := model.ContactInfo(*r)
	return &ci
}

type addressReq struct {
	Address    string `json:"address" validate:"omitempty,max=200"`
	Suburb     string `json:"suburb" validate:"omitempty,max=100"`
	City       string `json:"city" validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=20"`
}

func (r *addressReq) toModel() *model.Address {
	if r == nil {
		return nil
	}
	a := model.Address(*r)
	return &a
}

type createReq struct {
	TotalBedroom int             `json:"total_bedroom" validate:"min=0,max=100"`
	MoveDate     *string         `json:"move_date" example:"2024-10-01"`
	IsQualified  *bool           `json:"is_qualified"`
	Category     string          `json:"category" validate:"omitempty,max=50"`
	ContactInfo  *contactInfoReq `json:"contact_info"`
	MovingFrom   *addressReq     `json:"moving_from"`
	MovingTo     *addressReq     `json:"moving_to"`
	SentTo       []string        `json:"sent_to" validate:"omitempty,dive,required"`
}

func (r createReq) toInput() (lead.CreateInput, error) {
	moveDate, err := parseMoveDate(r.MoveDate)
	if err != nil {
		return lead.CreateInput{}, err
	}
	return lead.CreateInput{
		TotalBedroom: r.TotalBedroom,
		MoveDate:     moveDate,
		IsQualified:  r.IsQualified,
		Category:     r.Category,
		ContactInfo:  r.ContactInfo.toModel(),
		MovingFrom:   r.MovingFrom.toModel(),
		MovingTo:     r.MovingTo.toModel(),
		SentTo:       r.SentTo,
	}, nil
}

type updateReq struct {
	TotalBedroom *int            `json:"total_bedroom" validate:"omitempty,min=0,max=100"`
	MoveDate     *string         `json:"move_date" example:"2024-10-01"`
	IsQualified  *bool           `json:"is_qualified"`
	IsDeleted    *bool           `json:"is_deleted"`
	Category     *string         `json:"category" validate:"omitempty,max=50"`
	ContactInfo  *contactInfoReq `json:"contact_info"`
	MovingFrom   *addressReq     `json:"moving_from"`
	MovingTo     *addressReq     `json:"moving_to"`
	SentTo       *[]string       `json:"sent_to" validate:"omitempty,dive,required"`
}

func (r updateReq) toInput(id string) (lead.UpdateInput, error) {
	moveDate, err := parseMoveDate(r.MoveDate)
	if err != nil {
		return lead.UpdateInput{}, err
	}
	return lead.UpdateInput{
		ID:           id,
		TotalBedroom: r.TotalBedroom,
		MoveDate:     moveDate,
		IsQualified:  r.IsQualified,
		IsDeleted:    r.IsDeleted,
		Category:     r.Category,
		ContactInfo:  r.ContactInfo.toModel(),
		MovingFrom:   r.MovingFrom.toModel(),
		MovingTo:     r.MovingTo.toModel(),
		SentTo:       r.SentTo,
	}, nil
}

// --- Response DTOs ---

type leadResp struct {
	ID           string             `json:"_id"`
	TotalBedroom int                `json:"total_bedroom"`
	MoveDate     *time.Time         `json:"move_date"`
	IsQualified  *bool              `json:"is_qualified"`
	IsDeleted    bool               `json:"is_deleted"`
	Category     string             `json:"category,omitempty"`
	ContactInfo  *model.ContactInfo `json:"contact_info,omitempty"`
	MovingFrom   *model.Address     `json:"moving_from,omitempty"`
	MovingTo     *model.Address     `json:"moving_to,omitempty"`
	SentTo       []string           `json:"sent_to"`
	CreatedBy    string             `json:"created_by,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func newLeadResp(l model.Lead) leadResp {
	return leadResp{
		ID:           l.ID,
		TotalBedroom: l.TotalBedroom,
		MoveDate:     l.MoveDate,
		IsQualified:  l.IsQualified,
		IsDeleted:    l.IsDeleted,
		Category:     l.Category,
		ContactInfo:  l.ContactInfo,
		MovingFrom:   l.MovingFrom,
		MovingTo:     l.MovingTo,
		SentTo:       l.SentTo,
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

type listResp struct {
	TotalCount int64      `json:"totalCount"`
	Records    []leadResp `json:"records"`
	PageNo     int        `json:"pageNo"`
	PageSize   int64      `json:"pageSize"`
}

func newListResp(o lead.SearchOutput) listResp {
	records := make([]leadResp, len(o.Leads))
	for i, l := range o.Leads {
		records[i] = newLeadResp(l)
	}
	return listResp{
		TotalCount: o.Paginator.Total,
		Records:    records,
		PageNo:     o.Paginator.CurrentPage,
		PageSize:   o.Paginator.PerPage,
	}
}

type updateResp struct {
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}
