package views

import "github.com/dmitrijs2005/staffkeeper/internal/client/models"

type ProfileView struct {
	Name     string
	Email    string
	Role     models.Role
	Verified bool
	Status   string
}

func Profile(acc models.Account) ProfileView {
	return ProfileView{
		Name:     acc.FullName(),
		Email:    acc.Email,
		Role:     acc.Role,
		Verified: acc.Verified,
		Status:   verifiedLabel(acc.Verified),
	}
}
