package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub/hrms-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
	}
}

func claimsEmail(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("email not found in token")
	}
	return email, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context) (attendance.CheckInResponse, error) {
	email, err := claimsEmail(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, email)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.Email, today)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if existing != nil {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	checkIn := clock.FormatDisplayTime(now)
	status := attendance.ClassifyCheckIn(now.Hour()*60 + now.Minute())

	record, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID:    emp.ID,
		EmployeeEmail: emp.Email,
		EmployeeName:  emp.Name,
		Date:          today,
		CheckIn:       &checkIn,
		Status:        status,
	})
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.CheckInResponse{
		Attendance: toResponse(record),
		IsLate:     status == attendance.StatusLate,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	email, err := claimsEmail(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, email)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.Email, today)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	day, err := time.ParseInLocation("2006-01-02", record.Date, now.Location())
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to parse attendance date: %w", err)
	}

	hours, err := attendance.ComputeWorkingHours(*record.CheckIn, now, day)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	checkOut := clock.FormatDisplayTime(now)
	record.CheckOut = &checkOut
	record.WorkingHours = &hours

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.CheckOutResponse{
		Attendance:   toResponse(*record),
		WorkingHours: hours,
	}, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.MyAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	email, err := claimsEmail(ctx)
	if err != nil {
		return attendance.MyAttendanceResponse{}, err
	}

	month := filter.Month
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return attendance.MyAttendanceResponse{}, fmt.Errorf("failed to parse month: %w", err)
	}

	records, err := a.AttendanceRepository.ListByEmployeeAndMonth(ctx, email, parsed.Year(), int(parsed.Month()))
	if err != nil {
		return attendance.MyAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	summary := attendance.MonthlyTotals(records)

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return attendance.MyAttendanceResponse{
		Records: responses,
		Summary: attendance.MonthlySummaryResponse{
			PresentDays: summary.PresentDays,
			LateDays:    summary.LateDays,
			TotalHours:  summary.TotalHours,
		},
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	now := time.Now()
	date := filter.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	records, err := a.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	var employeeTotal int
	if filter.Department != "" {
		employees, _, err := a.EmployeeRepository.List(ctx, employee.EmployeeFilter{
			Department: filter.Department,
			Status:     string(employee.StatusActive),
		})
		if err != nil {
			return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list employees: %w", err)
		}

		inDepartment := make(map[string]bool, len(employees))
		for _, emp := range employees {
			inDepartment[emp.Email] = true
		}

		scoped := records[:0:0]
		for _, rec := range records {
			if inDepartment[rec.EmployeeEmail] {
				scoped = append(scoped, rec)
			}
		}
		records = scoped
		employeeTotal = len(employees)
	} else {
		employeeTotal, err = a.EmployeeRepository.CountActive(ctx)
		if err != nil {
			return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to count active employees: %w", err)
		}
	}

	summary := attendance.AggregateForPeriod(records, employeeTotal)
	totalHours, hoursWarnings := attendance.HoursAsOf(records, now)

	var warnings []attendance.DataWarning
	for _, w := range hoursWarnings {
		warnings = append(warnings, attendance.DataWarning{
			RecordID:      w.RecordID,
			EmployeeEmail: w.EmployeeEmail,
			Message:       fmt.Sprintf("unparseable check-in time %q, excluded from total hours", w.CheckIn),
		})
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		Date: date,
		Summary: attendance.DailySummaryResponse{
			Present:   summary.Present,
			Late:      summary.Late,
			Absent:    summary.Absent,
			CheckedIn: summary.CheckedIn,
		},
		TotalHours: totalHours,
		Records:    responses,
		Warnings:   warnings,
	}, nil
}

func toResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeEmail: rec.EmployeeEmail,
		EmployeeName:  rec.EmployeeName,
		Date:          rec.Date,
		CheckIn:       rec.CheckIn,
		CheckOut:      rec.CheckOut,
		Status:        string(rec.Status),
		WorkingHours:  rec.WorkingHours,
	}
}
