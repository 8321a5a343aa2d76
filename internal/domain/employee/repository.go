package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email
	// Used to join attendance and task records against identity
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves employee records with optional filters
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// CountActive counts employees with Active status
	CountActive(ctx context.Context) (int, error)

	// Update updates an existing employee record
	Update(ctx context.Context, employee Employee) error

	// Delete removes an employee record
	Delete(ctx context.Context, id string) error
}
