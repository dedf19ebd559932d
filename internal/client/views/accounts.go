package views

import "github.com/dmitrijs2005/staffkeeper/internal/client/models"

type AccountRow struct {
	ID       int64
	Name     string
	Email    string
	Role     models.Role
	Verified bool
	Status   string
	Actions  []string
}

type AccountsView struct {
	Rows []AccountRow
}

func Accounts(dir Directory) AccountsView {
	accs := dir.Accounts()
	v := AccountsView{Rows: make([]AccountRow, 0, len(accs))}
	for _, a := range accs {
		v.Rows = append(v.Rows, AccountRow{
			ID:       a.ID,
			Name:     a.FullName(),
			Email:    a.Email,
			Role:     a.Role,
			Verified: a.Verified,
			Status:   verifiedLabel(a.Verified),
			Actions:  actions(),
		})
	}
	return v
}
