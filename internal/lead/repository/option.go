package repository

import (
	"logistic-api/internal/model"
	"logistic-api/pkg/paginator"
	"logistic-api/pkg/search"
)

type ListOptions struct {
	Predicate     search.Predicate
	PaginateQuery paginator.PaginateQuery
}

type CountOptions struct {
	Predicate search.Predicate
}

type CreateOptions struct {
	Lead model.Lead
}

type UpdateOptions struct {
	ID  string
	Set search.Document
}
