package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/hrms-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
	}
}

func callerClaims(ctx context.Context) (email string, name string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", "", fmt.Errorf("email not found in token")
	}
	name, _ = claims["name"].(string)
	return email, name, nil
}

// ApplyLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	email, name, err := callerClaims(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if end.Before(start) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	// Duration counts calendar days, both endpoints inclusive.
	duration := int(end.Sub(start).Hours()/24) + 1

	created, err := l.LeaveRepository.Create(ctx, leave.LeaveRequest{
		EmployeeEmail: email,
		EmployeeName:  name,
		LeaveType:     req.LeaveType,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Duration:      duration,
		Reason:        req.Reason,
		Status:        leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(created), nil
}

// GetMyLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyLeave(ctx context.Context) (leave.ListLeaveResponse, error) {
	email, _, err := callerClaims(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, err := l.LeaveRepository.ListByEmployee(ctx, email)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toListResponse(requests), nil
}

// ListLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeave(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	requests, err := l.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toListResponse(requests), nil
}

// ApproveLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	request, err := l.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	request.Status = leave.StatusApproved
	if err := l.LeaveRepository.Update(ctx, request); err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(request), nil
}

// RejectLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectLeave(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	request, err := l.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	request.Status = leave.StatusRejected
	if req.Reason != "" {
		request.Reason = req.Reason
	}
	if err := l.LeaveRepository.Update(ctx, request); err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(request), nil
}

func toResponse(request leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:            request.ID,
		EmployeeEmail: request.EmployeeEmail,
		EmployeeName:  request.EmployeeName,
		LeaveType:     request.LeaveType,
		StartDate:     request.StartDate,
		EndDate:       request.EndDate,
		Duration:      request.Duration,
		Reason:        request.Reason,
		Status:        string(request.Status),
	}
}

func toListResponse(requests []leave.LeaveRequest) leave.ListLeaveResponse {
	response := leave.ListLeaveResponse{
		Requests: make([]leave.LeaveResponse, 0, len(requests)),
	}
	for _, request := range requests {
		switch request.Status {
		case leave.StatusPending:
			response.Pending++
		case leave.StatusApproved:
			response.Approved++
		case leave.StatusRejected:
			response.Rejected++
		}
		response.Requests = append(response.Requests, toResponse(request))
	}
	return response
}
