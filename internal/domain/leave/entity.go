package leave

import "time"

type LeaveRequest struct {
	ID            string
	EmployeeEmail string
	EmployeeName  string
	LeaveType     string
	StartDate     string // "2006-01-02"
	EndDate       string
	Duration      int // calendar days, inclusive
	Reason        string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)
