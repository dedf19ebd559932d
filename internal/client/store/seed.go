package store

import (
	"time"

	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
)

// Seed credentials.
const (
	SeedAdminEmail    = "admin@example.com"
	SeedAdminPassword = "Password123!"
)

func seedData(now time.Time) models.Data {
	d := models.Data{
		Accounts: []models.Account{{
			ID:        1,
			FirstName: "Admin",
			LastName:  "User",
			Email:     SeedAdminEmail,
			Password:  SeedAdminPassword,
			Role:      models.RoleAdmin,
			Verified:  true,
			CreatedAt: now.UTC().Format(TimeLayout),
		}},
		Departments: []models.Department{
			{ID: 1, Name: "Engineering", Description: "Software team"},
			{ID: 2, Name: "HR", Description: "Human Resources"},
		},
	}
	d.Normalize()
	return d
}
