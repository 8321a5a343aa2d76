package dashboard

import (
	"github.com/staffhub/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub/hrms-backend-go/internal/domain/task"
)

// ========== ADMIN DASHBOARD ==========

// AdminDashboardResponse is the combined response for the admin dashboard
type AdminDashboardResponse struct {
	EmployeeSummary EmployeeSummaryResponse         `json:"employee_summary"`
	Attendance      attendance.DailySummaryResponse `json:"attendance"`
	Tasks           task.StatusCountsResponse       `json:"tasks"`
	Date            string                          `json:"date"`
}

// EmployeeSummaryResponse carries the headline cards: totals, today's
// activity percentages and month-over-month growth figures.
type EmployeeSummaryResponse struct {
	TotalEmployees        int    `json:"total_employees"`
	ActiveToday           int    `json:"active_today"`
	ActiveTodayPercent    string `json:"active_today_percent"`
	OnLeave               int    `json:"on_leave"`
	OnLeavePercent        string `json:"on_leave_percent"`
	NewThisMonth          int    `json:"new_this_month"`
	EmployeeGrowthPercent string `json:"employee_growth_percent"`
}

// ========== EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is the combined response for the employee's own
// dashboard
type EmployeeDashboardResponse struct {
	Attendance attendance.MonthlySummaryResponse `json:"attendance"`
	Tasks      task.StatusCountsResponse         `json:"tasks"`
	Projects   []task.ProjectProgress            `json:"projects"`
	Month      string                            `json:"month"`
}
