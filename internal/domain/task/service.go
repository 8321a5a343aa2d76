package task

import "context"

// TaskService defines business logic for task operations
type TaskService interface {
	// CreateTask creates a task (admin); status is always forced to pending
	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)

	// GetTask retrieves a single task by ID
	GetTask(ctx context.Context, id string) (TaskResponse, error)

	// ListTasks retrieves tasks with filters, display-sorted, with status
	// counts
	ListTasks(ctx context.Context, filter TaskFilter) (ListTasksResponse, error)

	// GetMyTaskOverview retrieves the authenticated employee's tasks grouped
	// by project with per-project progress
	GetMyTaskOverview(ctx context.Context) (TaskOverviewResponse, error)

	// UpdateTask updates any task field (admin)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)

	// UpdateStatus changes the status of a task assigned to the caller
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (TaskResponse, error)

	// DeleteTask removes a task (admin)
	DeleteTask(ctx context.Context, id string) error
}
