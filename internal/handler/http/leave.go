package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ApplyLeave(w http.ResponseWriter, r *http.Request)
	GetMyLeave(w http.ResponseWriter, r *http.Request)
	ListLeave(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	RejectLeave(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// ApplyLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) ApplyLeave(w http.ResponseWriter, r *http.Request) {
	var applyReq leave.ApplyLeaveRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("ApplyLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	leaveResponse, err := l.leaveService.ApplyLeave(r.Context(), applyReq)
	if err != nil {
		slog.Error("ApplyLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	response.Created(w, "Leave request submitted successfully", leaveResponse)
}

// GetMyLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyLeave(w http.ResponseWriter, r *http.Request) {
	listResponse, err := l.leaveService.GetMyLeave(r.Context())
	if err != nil {
		slog.Error("GetMyLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// ListLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) ListLeave(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		Status: r.URL.Query().Get("status"),
	}

	listResponse, err := l.leaveService.ListLeave(r.Context(), filter)
	if err != nil {
		slog.Error("ListLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// ApproveLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	leaveResponse, err := l.leaveService.ApproveLeave(r.Context(), id)
	if err != nil {
		slog.Error("ApproveLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", leaveResponse)
}

// RejectLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectLeave(w http.ResponseWriter, r *http.Request) {
	var rejectReq leave.RejectLeaveRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("RejectLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	rejectReq.ID = chi.URLParam(r, "id")

	// Call service
	leaveResponse, err := l.leaveService.RejectLeave(r.Context(), rejectReq)
	if err != nil {
		slog.Error("RejectLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	response.SuccessWithMessage(w, "Leave request rejected", leaveResponse)
}
