package task

import (
	"github.com/staffhub/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// TASK DTOs
// ========================================

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	AssignedTo  string `json:"assigned_to"`
	Project     string `json:"project"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if !validator.IsInSlice(r.Priority, []string{string(PriorityHigh), string(PriorityMedium), string(PriorityLow)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be High, Medium or Low",
		})
	}

	if _, ok := validator.IsValidDate(r.DueDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidEmail(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to must be a valid email",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	AssignedTo  *string `json:"assigned_to"`
	Project     *string `json:"project"`
	Status      *string `json:"status"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Priority != nil && !validator.IsInSlice(*r.Priority, []string{string(PriorityHigh), string(PriorityMedium), string(PriorityLow)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be High, Medium or Low",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusPending), string(StatusInProgress), string(StatusCompleted)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be pending, in_progress or completed",
		})
	}

	if r.DueDate != nil && *r.DueDate != "" {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest is the assignee's own status change. Any enum value may
// follow any other; there is no enforced transition order.
type UpdateStatusRequest struct {
	TaskID    string `json:"task_id"`
	NewStatus string `json:"new_status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_id",
			Message: "task_id is required",
		})
	}

	if !validator.IsInSlice(r.NewStatus, []string{string(StatusPending), string(StatusInProgress), string(StatusCompleted)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_status",
			Message: "new_status must be pending, in_progress or completed",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	AssignedTo  string `json:"assigned_to"`
	Project     string `json:"project"`
	CreatedBy   string `json:"created_by,omitempty"`
}

type TaskFilter struct {
	AssignedTo string
	Status     string
	Department string
}

type ListTasksResponse struct {
	TotalCount int64                `json:"total_count"`
	Counts     StatusCountsResponse `json:"counts"`
	Tasks      []TaskResponse       `json:"tasks"`
}

type StatusCountsResponse struct {
	Pending           int `json:"pending"`
	InProgress        int `json:"in_progress"`
	Completed         int `json:"completed"`
	Total             int `json:"total"`
	CompletionPercent int `json:"completion_percent"`
}

type ProjectGroupResponse struct {
	Name  string         `json:"name"`
	Tasks []TaskResponse `json:"tasks"`
}

type TaskOverviewResponse struct {
	Counts   StatusCountsResponse   `json:"counts"`
	Projects []ProjectProgress      `json:"projects"`
	Groups   []ProjectGroupResponse `json:"groups"`
}
