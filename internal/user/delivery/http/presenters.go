package http

import (
	"time"

	"logistic-api/internal/model"
	"logistic-api/internal/user"
)

// --- Request DTOs ---

// searchReq documents the search body. Decoding goes through search.DecodeRequest,
// which also accepts the orAnd/params aliases.
type searchReq struct {
	Combinator string      `json:"combinator" example:"AND"`
	Clauses    []clauseReq `json:"clauses"`
}

type clauseReq struct {
	Field    string `json:"field" example:"status"`
	Operator string `json:"operator" example:"eq" enums:"eq,ne,gt,gte,lt,lte,in,contains,exists"`
	Value    any    `json:"value" swaggertype:"string" example:"active"`
}

type createReq struct {
	Name          string `json:"name" validate:"required,max=100"`
	Surname       string `json:"surname" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"omitempty,max=30"`
	Password      string `json:"password" validate:"required,min=8,max=72"`
	WhatsappPhone string `json:"whatsapp_phone" validate:"omitempty,max=30"`
	Role          string `json:"role" validate:"required,oneof=super_admin admin user manager"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	Company       string `json:"company" validate:"omitempty,max=100"`
	Position      string `json:"position" validate:"omitempty,max=100"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Name:          r.Name,
		Surname:       r.Surname,
		Email:         r.Email,
		Phone:         r.Phone,
		Password:      r.Password,
		WhatsappPhone: r.WhatsappPhone,
		Role:          r.Role,
		Status:        r.Status,
		Company:       r.Company,
		Position:      r.Position,
	}
}

type updateReq struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
	Surname       *string `json:"surname" validate:"omitempty,min=1,max=100"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,max=30"`
	Password      *string `json:"password" validate:"omitempty,min=8,max=72"`
	WhatsappPhone *string `json:"whatsapp_phone" validate:"omitempty,max=30"`
	Role          *string `json:"role" validate:"omitempty,oneof=super_admin admin user manager"`
	Status        *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	Company       *string `json:"company" validate:"omitempty,max=100"`
	Position      *string `json:"position" validate:"omitempty,max=100"`
}

func (r updateReq) toInput(id string) user.UpdateInput {
	return user.UpdateInput{
		ID:            id,
		Name:          r.Name,
		Surname:       r.Surname,
		Email:         r.Email,
		Phone:         r.Phone,
		Password:      r.Password,
		WhatsappPhone: r.WhatsappPhone,
		Role:          r.Role,
		Status:        r.Status,
		Company:       r.Company,
		Position:      r.Position,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Surname       string    `json:"surname"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	WhatsappPhone string    `json:"whatsapp_phone,omitempty"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	Company       string    `json:"company,omitempty"`
	Position      string    `json:"position,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:            u.ID,
		Name:          u.Name,
		Surname:       u.Surname,
		Email:         u.Email,
		Phone:         u.Phone,
		WhatsappPhone: u.WhatsappPhone,
		Role:          u.Role,
		Status:        u.Status,
		Company:       u.Company,
		Position:      u.Position,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

type listResp struct {
	TotalCount int64      `json:"totalCount"`
	Records    []userResp `json:"records"`
	PageNo     int        `json:"pageNo"`
	PageSize   int64      `json:"pageSize"`
}

func newListResp(o user.SearchOutput) listResp {
	records := make([]userResp, len(o.Users))
	for i, u := range o.Users {
		records[i] = newUserResp(u)
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
