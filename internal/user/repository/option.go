package repository

import (
	"logistic-api/internal/model"
	"logistic-api/pkg/paginator"
	"logistic-api/pkg/search"
)

// ListOptions contains options for a paginated listing.
type ListOptions struct {
	Predicate     search.Predicate
	PaginateQuery paginator.PaginateQuery
}

// CountOptions contains options for counting users.
type CountOptions struct {
	Predicate search.Predicate
}

// GetOneOptions contains options for getting a user by email.
type GetOneOptions struct {
	Email string
}

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}

// UpdateOptions merges Set into the stored user.
type UpdateOptions struct {
	ID  string
	Set search.Document
}
