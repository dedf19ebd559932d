package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/staffkeeper/internal/client/form"
	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
	"github.com/dmitrijs2005/staffkeeper/internal/client/router"
	"github.com/dmitrijs2005/staffkeeper/internal/common"
)

const (
	MsgEmployeeNotFound  = "Employee not found"
	MsgEmployeeUser      = "No account found with that email"
	MsgEmployeeDept      = "No department found with that id"
	MsgEmployeeAdded     = "Employee added successfully"
	MsgEmployeeUpdated   = "Employee updated successfully"
	MsgEmployeeDeleted   = "Employee deleted successfully"
	MsgEmployeeDeptIDNaN = "Department id must be a number"
)

type EmployeeService interface {
	Create(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type EmployeeParams struct {
	EmployeeID   string `validate:"required"`
	UserEmail    string `validate:"required"`
	Position     string `validate:"required"`
	DepartmentID string `validate:"required"`
	HireDate     string `validate:"required"`
}

type employeeService struct {
	*Deps
}

func NewEmployeeService(d *Deps) EmployeeService {
	return &employeeService{Deps: d}
}

// employeeFields pre-fills the user email and department id from e. A
// dangling reference gives an empty default.
func (s *employeeService) employeeFields(e models.Employee) []form.Field {
	var email, dept string
	if acc, ok := s.Store.AccountByID(e.UserID).Get(); ok {
		email = acc.Email
	}
	if e.DepartmentID != 0 {
		dept = strconv.FormatInt(e.DepartmentID, 10)
	}
	return []form.Field{
		{Key: "employeeId", Label: "Employee ID", Default: e.EmployeeID},
		{Key: "userEmail", Label: "User email", Default: email},
		{Key: "position", Label: "Position", Default: e.Position},
		{Key: "departmentId", Label: "Department ID", Default: dept},
		{Key: "hireDate", Label: "Hire date (YYYY-MM-DD)", Default: e.HireDate},
	}
}

// resolve checks the params and the references they name.
func (s *employeeService) resolve(ctx context.Context, v form.Values) (models.Employee, error) {
	p := EmployeeParams{
		EmployeeID:   v.Get("employeeId"),
		UserEmail:    common.NormalizeEmail(v.Get("userEmail")),
		Position:     v.Get("position"),
		DepartmentID: v.Get("departmentId"),
		HireDate:     v.Get("hireDate"),
	}
	if err := validateParams(p); err != nil {
		return models.Employee{}, s.fail(ctx, err, errorText(err))
	}

	acc, ok := s.Store.AccountByEmail(p.UserEmail).Get()
	if !ok {
		return models.Employee{}, s.fail(ctx, fmt.Errorf("%w: no account %s", common.ErrValidation, p.UserEmail), MsgEmployeeUser)
	}

	deptID, err := v.Int64("departmentId")
	if err != nil {
		return models.Employee{}, s.fail(ctx, err, MsgEmployeeDeptIDNaN)
	}
	if !s.Store.DepartmentByID(deptID).IsSet {
		return models.Employee{}, s.fail(ctx, fmt.Errorf("%w: no department %d", common.ErrValidation, deptID), MsgEmployeeDept)
	}

	return models.Employee{
		EmployeeID:   p.EmployeeID,
		UserID:       acc.ID,
		Position:     p.Position,
		DepartmentID: deptID,
		HireDate:     p.HireDate,
	}, nil
}

func (s *employeeService) Create(ctx context.Context) error {
	return form.Submit(ctx, s.Prompter, s.employeeFields(models.Employee{}), func(ctx context.Context, v form.Values) error {
		e, err := s.resolve(ctx, v)
		if err != nil {
			return err
		}

		e = s.Store.AddEmployee(e)
		s.Logger.Info(ctx, "employee added", "id", e.ID)
		return s.commit(ctx, router.PageEmployees, MsgEmployeeAdded)
	})
}

func (s *employeeService) Edit(ctx context.Context, id int64) error {
	cur, ok := s.Store.EmployeeByID(id).Get()
	if !ok {
		return s.fail(ctx, fmt.Errorf("%w: employee %d", common.ErrNotFound, id), MsgEmployeeNotFound)
	}

	return form.Submit(ctx, s.Prompter, s.employeeFields(cur), func(ctx context.Context, v form.Values) error {
		e, err := s.resolve(ctx, v)
		if err != nil {
			return err
		}

		s.Store.UpdateEmployee(id, func(x *models.Employee) {
			e.ID = x.ID
			*x = e
		})
		s.Logger.Info(ctx, "employee updated", "id", id)
		return s.commit(ctx, router.PageEmployees, MsgEmployeeUpdated)
	})
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	e, ok := s.Store.EmployeeByID(id).Get()
	if !ok {
		return s.fail(ctx, fmt.Errorf("%w: employee %d", common.ErrNotFound, id), MsgEmployeeNotFound)
	}
	if !s.confirmDelete(ctx, "employee "+e.EmployeeID) {
		return nil
	}

	s.Store.DeleteEmployee(id)
	s.Logger.Info(ctx, "employee deleted", "id", id)
	return s.commit(ctx, router.PageEmployees, MsgEmployeeDeleted)
}
