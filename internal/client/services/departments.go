package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/staffkeeper/internal/client/form"
	"github.com/dmitrijs2005/staffkeeper/internal/client/models"
	"github.com/dmitrijs2005/staffkeeper/internal/client/router"
	"github.com/dmitrijs2005/staffkeeper/internal/common"
)

const (
	MsgDepartmentNotFound = "Department not found"
	MsgDepartmentAdded    = "Department added successfully"
	MsgDepartmentUpdated  = "Department updated successfully"
	MsgDepartmentDeleted  = "Department deleted successfully"
)

type DepartmentService interface {
	Create(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type DepartmentParams struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
}

type departmentService struct {
	*Deps
}

func NewDepartmentService(d *Deps) DepartmentService {
	return &departmentService{Deps: d}
}

func departmentFields(d models.Department) []form.Field {
	return []form.Field{
		{Key: "name", Label: "Department name", Default: d.Name},
		{Key: "description", Label: "Description", Default: d.Description},
	}
}

func paramsFromValues(v form.Values) DepartmentParams {
	return DepartmentParams{Name: v.Get("name"), Description: v.Get("description")}
}

func (s *departmentService) Create(ctx context.Context) error {
	return form.Submit(ctx, s.Prompter, departmentFields(models.Department{}), func(ctx context.Context, v form.Values) error {
		p := paramsFromValues(v)
		if err := validateParams(p); err != nil {
			return s.fail(ctx, err, errorText(err))
		}

		d := s.Store.AddDepartment(models.Department{Name: p.Name, Description: p.Description})
		s.Logger.Info(ctx, "department added", "id", d.ID)
		return s.commit(ctx, router.PageDepartments, MsgDepartmentAdded)
	})
}

func (s *departmentService) Edit(ctx context.Context, id int64) error {
	dep, ok := s.Store.DepartmentByID(id).Get()
	if !ok {
		return s.fail(ctx, fmt.Errorf("%w: department %d", common.ErrNotFound, id), MsgDepartmentNotFound)
	}

	return form.Submit(ctx, s.Prompter, departmentFields(dep), func(ctx context.Context, v form.Values) error {
		p := paramsFromValues(v)
		if err := validateParams(p); err != nil {
			return s.fail(ctx, err, errorText(err))
		}

		s.Store.UpdateDepartment(id, func(d *models.Department) {
			d.Name = p.Name
			d.Description = p.Description
		})
		s.Logger.Info(ctx, "department updated", "id", id)
		return s.commit(ctx, router.PageDepartments, MsgDepartmentUpdated)
	})
}

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	dep, ok := s.Store.DepartmentByID(id).Get()
	if !ok {
		return s.fail(ctx, fmt.Errorf("%w: department %d", common.ErrNotFound, id), MsgDepartmentNotFound)
	}
	if !s.confirmDelete(ctx, "department "+dep.Name) {
		return nil
	}

	s.Store.DeleteDepartment(id)
	s.Logger.Info(ctx, "department deleted", "id", id)
	return s.commit(ctx, router.PageDepartments, MsgDepartmentDeleted)
}
