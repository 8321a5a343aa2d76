package task

import "time"

type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     string // "2006-01-02"
	AssignedTo  string // employee email
	Project     string // free-text grouping key; empty groups under "No Project"
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// NoProject is the grouping key for tasks without a project label.
const NoProject = "No Project"
