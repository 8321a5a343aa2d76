package attendance

import "time"

// Attendance is one record per (employee, calendar date), created at first
// check-in and completed in place at check-out. CheckIn and CheckOut hold
// the 12-hour display strings the UI renders, e.g. "09:15 AM"; nil means the
// event has not happened yet.
type Attendance struct {
	ID            string
	EmployeeID    string
	EmployeeEmail string
	EmployeeName  string
	Date          string // "2006-01-02", natural key together with EmployeeEmail
	CheckIn       *string
	CheckOut      *string
	Status        Status
	WorkingHours  *float64 // set once at check-out, rounded to 1 decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)
