package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/hrms-backend-go/internal/domain/task"
	"github.com/staffhub/hrms-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	CreateTask(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	GetMyTaskOverview(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{
		taskService: taskService,
	}
}

// CreateTask implements TaskHandler.
func (t *TaskHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var createReq task.CreateTaskRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	taskResponse, err := t.taskService.CreateTask(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	response.Created(w, "Task created successfully", taskResponse)
}

// GetTask implements TaskHandler.
func (t *TaskHandlerImpl) GetTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	taskResponse, err := t.taskService.GetTask(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, taskResponse)
}

// ListTasks implements TaskHandler.
func (t *TaskHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter := task.TaskFilter{
		AssignedTo: r.URL.Query().Get("assigned_to"),
		Status:     r.URL.Query().Get("status"),
		Department: r.URL.Query().Get("department"),
	}

	listResponse, err := t.taskService.ListTasks(r.Context(), filter)
	if err != nil {
		slog.Error("ListTasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// GetMyTaskOverview implements TaskHandler.
func (t *TaskHandlerImpl) GetMyTaskOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := t.taskService.GetMyTaskOverview(r.Context())
	if err != nil {
		slog.Error("GetMyTaskOverview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// UpdateTask implements TaskHandler.
func (t *TaskHandlerImpl) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var updateReq task.UpdateTaskRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Call service
	taskResponse, err := t.taskService.UpdateTask(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	response.SuccessWithMessage(w, "Task updated successfully", taskResponse)
}

// UpdateStatus implements TaskHandler.
func (t *TaskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq task.UpdateStatusRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.TaskID = chi.URLParam(r, "id")

	// Call service
	taskResponse, err := t.taskService.UpdateStatus(r.Context(), statusReq)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	response.SuccessWithMessage(w, "Task status updated successfully", taskResponse)
}

// DeleteTask implements TaskHandler.
func (t *TaskHandlerImpl) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := t.taskService.DeleteTask(r.Context(), id); err != nil {
		slog.Error("DeleteTask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}
