package http

import (
	"log/slog"
	"net/http"

	"github.com/staffhub/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	checkInResponse, err := a.attendanceService.CheckIn(r.Context())
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked in", "email", checkInResponse.Attendance.EmployeeEmail, "is_late", checkInResponse.IsLate)
	response.Created(w, "Checked in successfully", checkInResponse)
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	checkOutResponse, err := a.attendanceService.CheckOut(r.Context())
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee checked out", "email", checkOutResponse.Attendance.EmployeeEmail, "working_hours", checkOutResponse.WorkingHours)
	response.SuccessWithMessage(w, "Checked out successfully", checkOutResponse)
}

// GetMyAttendance implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.MyAttendanceFilter{
		Month: r.URL.Query().Get("month"),
	}

	myAttendance, err := a.attendanceService.GetMyAttendance(r.Context(), filter)
	if err != nil {
		slog.Error("GetMyAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, myAttendance)
}

// ListAttendance implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{
		Date:       r.URL.Query().Get("date"),
		Department: r.URL.Query().Get("department"),
	}

	listResponse, err := a.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		slog.Error("ListAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}
