package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee registers a new employee record (admin)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees retrieves employee records with filters
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)

	// ListDepartments derives the distinct departments from employee records
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)

	// UpdateEmployee updates an employee record (admin)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee record (admin)
	DeleteEmployee(ctx context.Context, id string) error
}
