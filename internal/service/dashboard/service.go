package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/staffhub/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub/hrms-backend-go/internal/domain/dashboard"
	"github.com/staffhub/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub/hrms-backend-go/internal/domain/task"
	"github.com/staffhub/hrms-backend-go/internal/pkg/stats"
)

type DashboardServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	task.TaskRepository
	leave.LeaveRepository
}

func NewDashboardService(
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	taskRepository task.TaskRepository,
	leaveRepository leave.LeaveRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
		TaskRepository:       taskRepository,
		LeaveRepository:      leaveRepository,
	}
}

// GetAdminDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetAdminDashboard(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	now := time.Now()
	today := now.Format("2006-01-02")
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		employees   []employee.Employee
		records     []attendance.Attendance
		tasks       []task.Task
		onLeave     int
		activeCount int
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, _, err = s.EmployeeRepository.List(gCtx, employee.EmployeeFilter{})
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		activeCount, err = s.EmployeeRepository.CountActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count active employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListByDate(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		tasks, err = s.TaskRepository.List(gCtx, task.TaskFilter{})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		onLeave, err = s.LeaveRepository.CountApprovedOnDate(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to count approved leave: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.AdminDashboardResponse{}, err
	}

	total := len(employees)
	newThisMonth := 0
	for _, emp := range employees {
		if !emp.JoinDate.Before(monthStart) {
			newThisMonth++
		}
	}

	attendanceSummary := attendance.AggregateForPeriod(records, activeCount)
	taskCounts := task.CountsByStatus(tasks)

	return dashboard.AdminDashboardResponse{
		EmployeeSummary: dashboard.EmployeeSummaryResponse{
			TotalEmployees:        total,
			ActiveToday:           attendanceSummary.CheckedIn,
			ActiveTodayPercent:    stats.Percent(attendanceSummary.CheckedIn, total),
			OnLeave:               onLeave,
			OnLeavePercent:        stats.Percent(onLeave, total),
			NewThisMonth:          newThisMonth,
			EmployeeGrowthPercent: stats.PercentChange(total-newThisMonth, total),
		},
		Attendance: attendance.DailySummaryResponse{
			Present:   attendanceSummary.Present,
			Late:      attendanceSummary.Late,
			Absent:    attendanceSummary.Absent,
			CheckedIn: attendanceSummary.CheckedIn,
		},
		Tasks: task.StatusCountsResponse{
			Pending:           taskCounts.Pending,
			InProgress:        taskCounts.InProgress,
			Completed:         taskCounts.Completed,
			Total:             taskCounts.Total,
			CompletionPercent: task.CompletionPercentage(tasks),
		},
		Date: today,
	}, nil
}

// GetEmployeeDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context) (dashboard.EmployeeDashboardResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("email not found in token")
	}

	now := time.Now()

	var (
		records []attendance.Attendance
		tasks   []task.Task
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListByEmployeeAndMonth(gCtx, email, now.Year(), int(now.Month()))
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		tasks, err = s.TaskRepository.List(gCtx, task.TaskFilter{AssignedTo: email})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	monthly := attendance.MonthlyTotals(records)
	taskCounts := task.CountsByStatus(tasks)

	return dashboard.EmployeeDashboardResponse{
		Attendance: attendance.MonthlySummaryResponse{
			PresentDays: monthly.PresentDays,
			LateDays:    monthly.LateDays,
			TotalHours:  monthly.TotalHours,
		},
		Tasks: task.StatusCountsResponse{
			Pending:           taskCounts.Pending,
			InProgress:        taskCounts.InProgress,
			Completed:         taskCounts.Completed,
			Total:             taskCounts.Total,
			CompletionPercent: task.CompletionPercentage(tasks),
		},
		Projects: task.ProgressByProject(tasks),
		Month:    now.Format("2006-01"),
	}, nil
}
