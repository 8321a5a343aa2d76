package http

import (
	"log/slog"
	"net/http"

	"github.com/staffhub/hrms-backend-go/internal/domain/dashboard"
	"github.com/staffhub/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetAdminDashboard(w http.ResponseWriter, r *http.Request)
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetAdminDashboard implements DashboardHandler.
func (d *DashboardHandlerImpl) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	adminDashboard, err := d.dashboardService.GetAdminDashboard(r.Context())
	if err != nil {
		slog.Error("GetAdminDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, adminDashboard)
}

// GetEmployeeDashboard implements DashboardHandler.
func (d *DashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	employeeDashboard, err := d.dashboardService.GetEmployeeDashboard(r.Context())
	if err != nil {
		slog.Error("GetEmployeeDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employeeDashboard)
}
