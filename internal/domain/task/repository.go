package task

import "context"

// TaskRepository defines data access methods for tasks.
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task Task) (Task, error)

	// GetByID retrieves a task by ID
	GetByID(ctx context.Context, id string) (Task, error)

	// List retrieves tasks, optionally filtered by assignee email and status
	List(ctx context.Context, filter TaskFilter) ([]Task, error)

	// Update updates an existing task
	Update(ctx context.Context, task Task) error

	// Delete removes a task
	Delete(ctx context.Context, id string) error
}
