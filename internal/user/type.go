package user

import (
	"logistic-api/internal/model"
	"logistic-api/pkg/paginator"
	"logistic-api/pkg/search"
)

// SearchInput filters users by Request. A Request without clauses lists every user.
type SearchInput struct {
	Request       search.Request
	PaginateQuery paginator.PaginateQuery
}

type SearchOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}

type GetOneInput struct {
	Email string
}

type CreateInput struct {
	Name          string
	Surname       string
	Email         string
	Phone         string
	Password      string
	WhatsappPhone string
	Role          string
	Status        string
	Company       string
	Position      string
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	ID            string
	Name          *string
	Surname       *string
	Email         *string
	Phone         *string
	Password      *string
	WhatsappPhone *string
	Role          *string
	Status        *string
	Company       *string
	Position      *string
}

type UpdateOutput struct {
	ModifiedCount int64
}
