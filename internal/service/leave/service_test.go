package leave

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/hrms-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = string(rune('a' + f.nextID))
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if filter.Status != "" && string(request.Status) != filter.Status {
			continue
		}
		out = append(out, request)
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeEmail string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.EmployeeEmail == employeeEmail {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) CountApprovedOnDate(ctx context.Context, date string) (int, error) {
	count := 0
	for _, request := range f.requests {
		if request.Status == leave.StatusApproved && request.StartDate <= date && date <= request.EndDate {
			count++
		}
	}
	return count, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, request leave.LeaveRequest) error {
	if _, ok := f.requests[request.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	f.requests[request.ID] = request
	return nil
}

func employeeContext(t *testing.T, email, name string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"email": email,
		"name":  name,
		"role":  "employee",
		"type":  "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestApplyLeaveDurationInclusive(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())
	ctx := employeeContext(t, "alice@staffhub.io", "Alice")

	tests := []struct {
		name      string
		startDate string
		endDate   string
		duration  int
	}{
		{"single day", "2026-08-10", "2026-08-10", 1},
		{"full week", "2026-08-10", "2026-08-14", 5},
		{"across month boundary", "2026-08-31", "2026-09-02", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := svc.ApplyLeave(ctx, leave.ApplyLeaveRequest{
				LeaveType: "annual",
				StartDate: tt.startDate,
				EndDate:   tt.endDate,
				Reason:    "vacation",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.duration, created.Duration)
			assert.Equal(t, string(leave.StatusPending), created.Status)
			assert.Equal(t, "alice@staffhub.io", created.EmployeeEmail)
		})
	}
}

func TestApplyLeaveRejectsInvertedRange(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo())
	ctx := employeeContext(t, "alice@staffhub.io", "Alice")

	_, err := svc.ApplyLeave(ctx, leave.ApplyLeaveRequest{
		LeaveType: "annual",
		StartDate: "2026-08-14",
		EndDate:   "2026-08-10",
	})
	require.Error(t, err)
}

func TestApproveAndRejectLeave(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)
	ctx := employeeContext(t, "alice@staffhub.io", "Alice")

	created, err := svc.ApplyLeave(ctx, leave.ApplyLeaveRequest{
		LeaveType: "sick",
		StartDate: "2026-08-20",
		EndDate:   "2026-08-21",
	})
	require.NoError(t, err)

	approved, err := svc.ApproveLeave(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), approved.Status)

	// Re-processing an already handled request is rejected
	_, err = svc.ApproveLeave(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = svc.RejectLeave(ctx, leave.RejectLeaveRequest{ID: created.ID, Reason: "too late"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestListLeaveStatusCounts(t *testing.T) {
	repo := newFakeLeaveRepo()
	seed := []leave.LeaveRequest{
		{EmployeeEmail: "a@staffhub.io", StartDate: "2026-08-01", EndDate: "2026-08-01", Status: leave.StatusPending},
		{EmployeeEmail: "b@staffhub.io", StartDate: "2026-08-02", EndDate: "2026-08-03", Status: leave.StatusApproved},
		{EmployeeEmail: "c@staffhub.io", StartDate: "2026-08-04", EndDate: "2026-08-04", Status: leave.StatusApproved},
		{EmployeeEmail: "d@staffhub.io", StartDate: "2026-08-05", EndDate: "2026-08-05", Status: leave.StatusRejected},
	}
	for _, request := range seed {
		_, err := repo.Create(context.Background(), request)
		require.NoError(t, err)
	}

	svc := NewLeaveService(repo)

	list, err := svc.ListLeave(context.Background(), leave.LeaveFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Pending)
	assert.Equal(t, 2, list.Approved)
	assert.Equal(t, 1, list.Rejected)
	assert.Len(t, list.Requests, 4)
}
