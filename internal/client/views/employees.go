package views

import (
	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
	"github.com/dmitrijs2005/staffkeeper/internal/util"
)

type EmployeeRow struct {
	ID         int64
	EmployeeID string
	Email      string
	Position   string
	Department string
	HireDate   string
	Actions    []string
}

type EmployeesView struct {
	Rows []EmployeeRow
}

// Employees joins each employee with its account email and department name.
// A reference that no longer resolves is shown as Unknown.
func Employees(dir Directory) EmployeesView {
	emps := dir.Employees()
	v := EmployeesView{Rows: make([]EmployeeRow, 0, len(emps))}
	for _, e := range emps {
		email := util.Map(dir.AccountByID(e.UserID), func(a models.Account) string { return a.Email })
		dept := util.Map(dir.DepartmentByID(e.DepartmentID), func(d models.Department) string { return d.Name })

		v.Rows = append(v.Rows, EmployeeRow{
			ID:         e.ID,
			EmployeeID: e.EmployeeID,
			Email:      email.UnwrapOr(Unknown),
			Position:   e.Position,
			Department: dept.UnwrapOr(Unknown),
			HireDate:   e.HireDate,
			Actions:    actions(),
		})
	}
	return v
}
