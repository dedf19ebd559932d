package models

// Employee links an Account to a Department. UserID and DepartmentID are
// plain ids: nothing keeps them pointing at existing records.
type Employee struct {
	ID           int64  `json:"id"`
	EmployeeID   string `json:"employeeId"`
	UserID       int64  `json:"userId"`
	Position     string `json:"position"`
	DepartmentID int64  `json:"departmentId"`
	HireDate     string `json:"hireDate"`
}
