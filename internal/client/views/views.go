// Package views turns store and session state into view models. Every
// function here only reads its inputs.
package views

import (
	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
	"github.com/dmitrijs2005/staffkeeper/internal/util"
)

// Unknown is shown in place of a reference that no longer resolves.
const Unknown = "Unknown"

// EmptyDepartments is the single row shown when there are no departments.
const EmptyDepartments = "No departments found"

// Directory is the read side of the store used by the renderers.
type Directory interface {
	Accounts() []models.Account
	Departments() []models.Department
	Employees() []models.Employee
	AccountByID(id int64) util.Optional[models.Account]
	DepartmentByID(id int64) util.Optional[models.Department]
}

// Action names offered on every collection row.
const (
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

var rowActions = []string{ActionEdit, ActionDelete}

func actions() []string {
	return append([]string(nil), rowActions...)
}

func verifiedLabel(v bool) string {
	if v {
		return "Verified"
	}
	return "Not verified"
}
