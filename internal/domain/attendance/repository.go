package attendance

import "context"

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one date
	// Used to prevent double check-in; returns nil when none exists
	GetByEmployeeAndDate(ctx context.Context, employeeEmail string, date string) (*Attendance, error)

	// Update updates an existing attendance record in place
	Update(ctx context.Context, attendance Attendance) error

	// ListByDate retrieves all records for a calendar date
	ListByDate(ctx context.Context, date string) ([]Attendance, error)

	// ListByEmployeeAndMonth retrieves one employee's records for a month,
	// most recent date first
	ListByEmployeeAndMonth(ctx context.Context, employeeEmail string, year int, month int) ([]Attendance, error)
}
