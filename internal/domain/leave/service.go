package leave

import "context"

// LeaveService defines business logic for leave operations
type LeaveService interface {
	// ApplyLeave submits a new leave request for the authenticated employee
	ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)

	// GetMyLeave retrieves the authenticated employee's leave requests
	GetMyLeave(ctx context.Context) (ListLeaveResponse, error)

	// ListLeave retrieves leave requests with status counts (admin)
	ListLeave(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// ApproveLeave approves a pending leave request (admin)
	ApproveLeave(ctx context.Context, id string) (LeaveResponse, error)

	// RejectLeave rejects a pending leave request (admin)
	RejectLeave(ctx context.Context, req RejectLeaveRequest) (LeaveResponse, error)
}
