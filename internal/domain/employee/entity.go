package employee

import "time"

type Employee struct {
	ID         string
	UserID     *string
	Name       string
	Email      string
	Department string
	Position   string
	Status     Status
	JoinDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)
