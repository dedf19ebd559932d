package store

import (
	"slices"

	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
	"github.com/dmitrijs2005/staffkeeper/internal/common"
	"github.com/dmitrijs2005/staffkeeper/internal/util"
)

func find[T any](items []T, match func(T) bool) util.Optional[T] {
	if i := slices.IndexFunc(items, match); i >= 0 {
		return util.Some(items[i])
	}
	return util.None[T]()
}

func update[T any](items []T, match func(T) bool, fn func(*T)) bool {
	i := slices.IndexFunc(items, match)
	if i < 0 {
		return false
	}
	fn(&items[i])
	return true
}

func remove[T any](items []T, match func(T) bool) ([]T, bool) {
	n := len(items)
	items = slices.DeleteFunc(items, match)
	return items, len(items) != n
}

func accountID(id int64) func(models.Account) bool {
	return func(a models.Account) bool { return a.ID == id }
}

func departmentID(id int64) func(models.Department) bool {
	return func(d models.Department) bool { return d.ID == id }
}

func employeeID(id int64) func(models.Employee) bool {
	return func(e models.Employee) bool { return e.ID == id }
}

// Accounts

func (s *Store) Accounts() []models.Account {
	return slices.Clone(s.data.Accounts)
}

func (s *Store) AccountByID(id int64) util.Optional[models.Account] {
	return find(s.data.Accounts, accountID(id))
}

// AccountByCredentials finds a verified account with this email and exactly
// this password. Emails are only unique at creation, so every account with
// the email is considered.
func (s *Store) AccountByCredentials(email, password string) util.Optional[models.Account] {
	email = common.NormalizeEmail(email)
	return find(s.data.Accounts, func(a models.Account) bool {
		return a.Verified && a.Password == password && common.NormalizeEmail(a.Email) == email
	})
}

// AccountByEmail matches on the normalized email.
func (s *Store) AccountByEmail(email string) util.Optional[models.Account] {
	email = common.NormalizeEmail(email)
	return find(s.data.Accounts, func(a models.Account) bool {
		return common.NormalizeEmail(a.Email) == email
	})
}

// AddAccount assigns a fresh id and appends a.
func (s *Store) AddAccount(a models.Account) models.Account {
	a.ID = s.NextID()
	s.data.Accounts = append(s.data.Accounts, a)
	return a
}

func (s *Store) UpdateAccount(id int64, fn func(*models.Account)) bool {
	return update(s.data.Accounts, accountID(id), fn)
}

func (s *Store) DeleteAccount(id int64) bool {
	var ok bool
	s.data.Accounts, ok = remove(s.data.Accounts, accountID(id))
	return ok
}

// Departments

func (s *Store) Departments() []models.Department {
	return slices.Clone(s.data.Departments)
}

func (s *Store) DepartmentByID(id int64) util.Optional[models.Department] {
	return find(s.data.Departments, departmentID(id))
}

func (s *Store) AddDepartment(d models.Department) models.Department {
	d.ID = s.NextID()
	s.data.Departments = append(s.data.Departments, d)
	return d
}

func (s *Store) UpdateDepartment(id int64, fn func(*models.Department)) bool {
	return update(s.data.Departments, departmentID(id), fn)
}

func (s *Store) DeleteDepartment(id int64) bool {
	var ok bool
	s.data.Departments, ok = remove(s.data.Departments, departmentID(id))
	return ok
}

// Employees

func (s *Store) Employees() []models.Employee {
	return slices.Clone(s.data.Employees)
}

func (s *Store) EmployeeByID(id int64) util.Optional[models.Employee] {
	return find(s.data.Employees, employeeID(id))
}

func (s *Store) AddEmployee(e models.Employee) models.Employee {
	e.ID = s.NextID()
	s.data.Employees = append(s.data.Employees, e)
	return e
}

func (s *Store) UpdateEmployee(id int64, fn func(*models.Employee)) bool {
	return update(s.data.Employees, employeeID(id), fn)
}

func (s *Store) DeleteEmployee(id int64) bool {
	var ok bool
	s.data.Employees, ok = remove(s.data.Employees, employeeID(id))
	return ok
}

// Requests is the reserved collection, returned as stored.
func (s *Store) Requests() []models.Request {
	return slices.Clone(s.data.Requests)
}
