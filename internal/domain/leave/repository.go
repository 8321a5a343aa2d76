package leave

import "context"

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves leave requests, optionally filtered by status
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, error)

	// ListByEmployee retrieves one employee's leave requests
	ListByEmployee(ctx context.Context, employeeEmail string) ([]LeaveRequest, error)

	// CountApprovedOnDate counts employees with an approved leave covering a
	// calendar date
	CountApprovedOnDate(ctx context.Context, date string) (int, error)

	// Update updates an existing leave request
	Update(ctx context.Context, request LeaveRequest) error
}
