package leave

import (
	"github.com/staffhub/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date cannot be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

type LeaveResponse struct {
	ID            string `json:"id"`
	EmployeeEmail string `json:"employee_email"`
	EmployeeName  string `json:"employee_name"`
	LeaveType     string `json:"leave_type"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Duration      int    `json:"duration"`
	Reason        string `json:"reason,omitempty"`
	Status        string `json:"status"`
}

type LeaveFilter struct {
	Status string
}

type ListLeaveResponse struct {
	Pending  int             `json:"pending"`
	Approved int             `json:"approved"`
	Rejected int             `json:"rejected"`
	Requests []LeaveResponse `json:"requests"`
}
