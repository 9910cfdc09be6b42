package model

import (
	"time"

	"logistic-api/pkg/docstore"
	"logistic-api/pkg/search"
)

const UserCollection = "user"

const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// Roles and Statuses list the accepted enum values.
var (
	Roles        = []string{RoleSuperAdmin, RoleAdmin, RoleUser, RoleManager}
	UserStatuses = []string{UserStatusActive, UserStatusInactive, UserStatusSuspended}
)

// UserDateFields are compared as dates by range filters.
var UserDateFields = []string{"createdAt", "updatedAt"}

// UserDeniedFields can never appear in a search clause.
var UserDeniedFields = []string{"password"}

type User struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Surname       string    `json:"surname"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Password      string    `json:"password,omitempty"`
	WhatsappPhone string    `json:"whatsapp_phone,omitempty"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	Company       string    `json:"company,omitempty"`
	Position      string    `json:"position,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewUserFromRecord decodes a stored record. Timestamps come from the record.
func NewUserFromRecord(rec docstore.Record) (User, error) {
	var u User
	if err := rec.Data.Decode(&u); err != nil {
		return User{}, err
	}
	u.ID = rec.ID
	u.CreatedAt = rec.CreatedAt
	u.UpdatedAt = rec.UpdatedAt
	return u, nil
}

// ToDocument returns the stored form of u without id and timestamps.
func (u User) ToDocument() (search.Document, error) {
	doc, err := search.NewDocument(u)
	if err != nil {
		return nil, err
	}
	docstore.StripReserved(doc)
	return doc, nil
}
