package model

import (
	"time"

	"logistic-api/pkg/docstore"
	"logistic-api/pkg/search"
)

const LeadCollection = "lead"

// LeadDateFields are compared as dates by range filters.
var LeadDateFields = []string{"move_date", "createdAt", "updatedAt"}

type ContactInfo struct {
	Name          string `json:"name,omitempty"`
	Surname       string `json:"surname,omitempty"`
	Title         string `json:"title,omitempty"`
	Email         string `json:"email,omitempty"`
	WhatsappPhone string `json:"whatsapp_phone,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

type Address struct {
	Address    string `json:"address,omitempty"`
	Suburb     string `json:"suburb,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

type Lead struct {
	ID           string       `json:"_id"`
	TotalBedroom int          `json:"total_bedroom"`
	MoveDate     *time.Time   `json:"move_date,omitempty"`
	IsQualified  *bool        `json:"is_qualified"`
	IsDeleted    bool         `json:"is_deleted"`
	Category     string       `json:"category,omitempty"`
	ContactInfo  *ContactInfo `json:"contact_info,omitempty"`
	MovingFrom   *Address     `json:"moving_from,omitempty"`
	MovingTo     *Address     `json:"moving_to,omitempty"`
	SentTo       []string     `json:"sent_to"`
	CreatedBy    string       `json:"created_by,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// NewLeadFromRecord decodes a stored record. Timestamps come from the record.
func NewLeadFromRecord(rec docstore.Record) (Lead, error) {
	var l Lead
	if err := rec.Data.Decode(&l); err != nil {
		return Lead{}, err
	}
	l.ID = rec.ID
	l.CreatedAt = rec.CreatedAt
	l.UpdatedAt = rec.UpdatedAt
	if l.SentTo == nil {
		l.SentTo = []string{}
	}
	return l, nil
}

// ToDocument returns the stored form of l without id and timestamps.
func (l Lead) ToDocument() (search.Document, error) {
	if l.SentTo == nil {
		l.SentTo = []string{}
	}
	doc, err := search.NewDocument(l)
	if err != nil {
		return nil, err
	}
	docstore.StripReserved(doc)
	return doc, nil
}
