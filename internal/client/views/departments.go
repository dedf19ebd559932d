package views

type DepartmentRow struct {
	ID          int64
	Name        string
	Description string
	Actions     []string
}

// DepartmentsView carries either rows or, when Empty is set, a single
// placeholder message.
type DepartmentsView struct {
	Rows    []DepartmentRow
	Empty   bool
	Message string
}

func Departments(dir Directory) DepartmentsView {
	deps := dir.Departments()
	if len(deps) == 0 {
		return DepartmentsView{Rows: []DepartmentRow{}, Empty: true, Message: EmptyDepartments}
	}

	v := DepartmentsView{Rows: make([]DepartmentRow, 0, len(deps))}
	for _, d := range deps {
		v.Rows = append(v.Rows, DepartmentRow{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Actions:     actions(),
		})
	}
	return v
}
