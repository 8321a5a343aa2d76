package dashboard

import "context"

// DashboardService defines the derived statistics surfaces
type DashboardService interface {
	// GetAdminDashboard combines employee, attendance and task aggregates
	// for the admin landing page
	GetAdminDashboard(ctx context.Context) (AdminDashboardResponse, error)

	// GetEmployeeDashboard combines the caller's monthly attendance totals
	// and task progress
	GetEmployeeDashboard(ctx context.Context) (EmployeeDashboardResponse, error)
}
