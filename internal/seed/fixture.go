package seed

import (
	"time"

	"logistic-api/internal/model"
)

// Fixed ids keep seeding idempotent.
const (
	JohnID  = "64ed7f2d-cbf1-4c2a-9e9f-15c000000001"
	JaneID  = "64ed7f2d-cbf1-4c2a-9e9f-15c000000002"
	AliceID = "64ed7f2d-cbf1-4c2a-9e9f-15c000000003"

	MichaelLeadID = "64ed7f2d-cbf1-4c2a-9e9f-15c000000004"
	LauraLeadID   = "64ed7f2d-cbf1-4c2a-9e9f-15c000000005"
)

// Users returns the seeded users with plain-text passwords.
func Users() []model.User {
	return []model.User{
		{
			ID:            JohnID,
			Name:          "John",
			Surname:       "Doe",
			Email:         "john.doe@example.com",
			Phone:         "123-456-7890",
			Password:      "hashed_password1",
			WhatsappPhone: "123-456-7890",
			Role:          model.RoleSuperAdmin,
			Status:        model.UserStatusActive,
			Company:       "ExampleCorp",
			Position:      "CTO",
		},
		{
			ID:            JaneID,
			Name:          "Jane",
			Surname:       "Smith",
			Email:         "jane.smith@example.com",
			Phone:         "987-654-3210",
			Password:      "hashed_password2",
			WhatsappPhone: "987-654-3210",
			Role:          model.RoleUser,
			Status:        model.UserStatusActive,
			Company:       "AnotherCorp",
			Position:      "Manager",
		},
		{
			ID:            AliceID,
			Name:          "Alice",
			Surname:       "Johnson",
			Email:         "alice.johnson@example.com",
			Phone:         "555-123-4567",
			Password:      "hashed_password3",
			WhatsappPhone: "555-123-4567",
			Role:          model.RoleManager,
			Status:        model.UserStatusInactive,
			Company:       "ExampleCorp",
			Position:      "Operations Manager",
		},
	}
}

// Leads returns the seeded leads.
func Leads() []model.Lead {
	qualified, notQualified := true, false
	sep15 := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)
	sep20 := time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)

	return []model.Lead{
		{
			ID:           MichaelLeadID,
			TotalBedroom: 3,
			MoveDate:     &sep15,
			IsQualified:  &qualified,
			Category:     "residential",
			ContactInfo: &model.ContactInfo{
				Name:          "Michael",
				Surname:       "Brown",
				Title:         "Mr.",
				Email:         "michael.brown@example.com",
				WhatsappPhone: "333-444-5555",
				Phone:         "333-444-5555",
			},
			MovingFrom: &model.Address{Address: "123 Elm St", Suburb: "Greenfield", City: "Johannesburg", PostalCode: "2001"},
			MovingTo:   &model.Address{Address: "456 Oak St", Suburb: "Sunnyvale", City: "Pretoria", PostalCode: "0182"},
			SentTo:     []string{"john.doe@example.com", "jane.smith@example.com"},
			CreatedBy:  JohnID,
		},
		{
			ID:           LauraLeadID,
			TotalBedroom: 2,
			MoveDate:     &sep20,
			IsQualified:  &notQualified,
			Category:     "commercial",
			ContactInfo: &model.ContactInfo{
				Name:          "Laura",
				Surname:       "Green",
				Title:         "Ms.",
				Email:         "laura.green@example.com",
				WhatsappPhone: "444-555-6666",
				Phone:         "444-555-6666",
			},
			MovingFrom: &model.Address{Address: "789 Pine St", Suburb: "Riverside", City: "Cape Town", PostalCode: "8000"},
			MovingTo:   &model.Address{Address: "101 Maple St", Suburb: "Downtown", City: "Durban", PostalCode: "4001"},
			SentTo:     []string{"alice.johnson@example.com"},
			CreatedBy:  AliceID,
		},
	}
}
