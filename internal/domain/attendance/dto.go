package attendance

import (
	"github.com/staffhub/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeEmail string   `json:"employee_email"`
	EmployeeName  string   `json:"employee_name"`
	Date          string   `json:"date"`
	CheckIn       *string  `json:"check_in"`
	CheckOut      *string  `json:"check_out"`
	Status        string   `json:"status"`
	WorkingHours  *float64 `json:"working_hours"`
}

type CheckInResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	IsLate     bool               `json:"is_late"`
}

type CheckOutResponse struct {
	Attendance   AttendanceResponse `json:"attendance"`
	WorkingHours float64            `json:"working_hours"`
}

// MyAttendanceFilter scopes an employee's own records to a calendar month.
type MyAttendanceFilter struct {
	Month string // "2006-01", defaults to the current month
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != "" {
		if _, ok := validator.IsValidDate(f.Month + "-01"); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MyAttendanceResponse struct {
	Records []AttendanceResponse   `json:"records"`
	Summary MonthlySummaryResponse `json:"summary"`
}

type MonthlySummaryResponse struct {
	PresentDays int     `json:"present_days"`
	LateDays    int     `json:"late_days"`
	TotalHours  float64 `json:"total_hours"`
}

// AttendanceFilter scopes the admin listing to a calendar date, optionally
// narrowed by department.
type AttendanceFilter struct {
	Date       string // "2006-01-02", defaults to today
	Department string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailySummaryResponse struct {
	Present   int `json:"present"`
	Late      int `json:"late"`
	Absent    int `json:"absent"`
	CheckedIn int `json:"checked_in"`
}

type DataWarning struct {
	RecordID      string `json:"record_id"`
	EmployeeEmail string `json:"employee_email"`
	Message       string `json:"message"`
}

type ListAttendanceResponse struct {
	Date       string               `json:"date"`
	Summary    DailySummaryResponse `json:"summary"`
	TotalHours float64              `json:"total_hours"`
	Records    []AttendanceResponse `json:"records"`
	Warnings   []DataWarning        `json:"warnings,omitempty"`
}
