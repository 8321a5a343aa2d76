package task

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub/hrms-backend-go/internal/domain/task"
)

type fakeTaskRepo struct {
	tasks  map[string]task.Task
	nextID int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]task.Task)}
}

func (f *fakeTaskRepo) Create(ctx context.Context, t task.Task) (task.Task, error) {
	f.nextID++
	t.ID = string(rune('a' + f.nextID))
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) List(ctx context.Context, filter task.TaskFilter) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.tasks {
		if filter.AssignedTo != "" && t.AssignedTo != filter.AssignedTo {
			continue
		}
		if filter.Status != "" && string(t.Status) != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, t task.Task) error {
	if _, ok := f.tasks[t.ID]; !ok {
		return task.ErrTaskNotFound
	}
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.tasks[id]; !ok {
		return task.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if filter.Department != "" && e.Department != filter.Department {
			continue
		}
		if filter.Status != "" && string(e.Status) != filter.Status {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int, error) {
	count := 0
	for _, e := range f.employees {
		if e.Status == employee.StatusActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error           { return nil }

func authedContext(t *testing.T, email, name, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"email": email,
		"name":  name,
		"role":  role,
		"type":  "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCreateTaskForcesPending(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, &fakeEmployeeRepo{})
	ctx := authedContext(t, "admin@staffhub.io", "Admin", "admin")

	created, err := svc.CreateTask(ctx, task.CreateTaskRequest{
		Title:      "Write onboarding guide",
		Priority:   "High",
		DueDate:    "2026-09-01",
		AssignedTo: "Alice@staffhub.io",
	})
	require.NoError(t, err)

	assert.Equal(t, string(task.StatusPending), created.Status)
	assert.Equal(t, "alice@staffhub.io", created.AssignedTo)
	assert.Equal(t, "admin@staffhub.io", created.CreatedBy)
}

func TestCreateTaskValidation(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), &fakeEmployeeRepo{})
	ctx := authedContext(t, "admin@staffhub.io", "Admin", "admin")

	_, err := svc.CreateTask(ctx, task.CreateTaskRequest{
		Title:      "",
		Priority:   "Urgent",
		DueDate:    "tomorrow",
		AssignedTo: "not-an-email",
	})
	require.Error(t, err)
}

func TestUpdateStatusRequiresAssignee(t *testing.T) {
	repo := newFakeTaskRepo()
	created, err := repo.Create(context.Background(), task.Task{
		Title:      "Quarterly report",
		Status:     task.StatusPending,
		AssignedTo: "alice@staffhub.io",
	})
	require.NoError(t, err)

	svc := NewTaskService(repo, &fakeEmployeeRepo{})

	_, err = svc.UpdateStatus(authedContext(t, "bob@staffhub.io", "Bob", "employee"), task.UpdateStatusRequest{
		TaskID:    created.ID,
		NewStatus: "completed",
	})
	assert.ErrorIs(t, err, task.ErrNotAssignee)

	updated, err := svc.UpdateStatus(authedContext(t, "alice@staffhub.io", "Alice", "employee"), task.UpdateStatusRequest{
		TaskID:    created.ID,
		NewStatus: "in_progress",
	})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", updated.Status)
}

func TestListTasksDepartmentScope(t *testing.T) {
	taskRepo := newFakeTaskRepo()
	_, _ = taskRepo.Create(context.Background(), task.Task{Title: "A", Status: task.StatusPending, AssignedTo: "alice@staffhub.io"})
	_, _ = taskRepo.Create(context.Background(), task.Task{Title: "B", Status: task.StatusCompleted, AssignedTo: "bob@staffhub.io"})
	_, _ = taskRepo.Create(context.Background(), task.Task{Title: "C", Status: task.StatusPending, AssignedTo: "ghost@staffhub.io"})

	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "1", Email: "alice@staffhub.io", Department: "Engineering", Status: employee.StatusActive},
		{ID: "2", Email: "bob@staffhub.io", Department: "Design", Status: employee.StatusActive},
	}}

	svc := NewTaskService(taskRepo, employeeRepo)
	ctx := authedContext(t, "admin@staffhub.io", "Admin", "admin")

	list, err := svc.ListTasks(ctx, task.TaskFilter{Department: "Engineering"})
	require.NoError(t, err)

	require.Len(t, list.Tasks, 1)
	assert.Equal(t, "alice@staffhub.io", list.Tasks[0].AssignedTo)
	assert.Equal(t, 1, list.Counts.Pending)
	assert.Equal(t, 0, list.Counts.Completed)
}

func TestGetMyTaskOverviewGroupsByProject(t *testing.T) {
	taskRepo := newFakeTaskRepo()
	_, _ = taskRepo.Create(context.Background(), task.Task{Title: "A", Status: task.StatusCompleted, AssignedTo: "alice@staffhub.io", Project: "Apollo"})
	_, _ = taskRepo.Create(context.Background(), task.Task{Title: "B", Status: task.StatusPending, AssignedTo: "alice@staffhub.io", Project: "Apollo"})
	_, _ = taskRepo.Create(context.Background(), task.Task{Title: "C", Status: task.StatusPending, AssignedTo: "alice@staffhub.io"})

	svc := NewTaskService(taskRepo, &fakeEmployeeRepo{})

	overview, err := svc.GetMyTaskOverview(authedContext(t, "alice@staffhub.io", "Alice", "employee"))
	require.NoError(t, err)

	assert.Equal(t, 3, overview.Counts.Total)
	assert.Equal(t, 1, overview.Counts.Completed)
	assert.Equal(t, 33, overview.Counts.CompletionPercent)

	names := make(map[string]bool)
	for _, g := range overview.Groups {
		names[g.Name] = true
	}
	assert.True(t, names["Apollo"])
	assert.True(t, names[task.NoProject])

	for _, p := range overview.Projects {
		if p.Name == "Apollo" {
			assert.Equal(t, 2, p.Total)
			assert.Equal(t, 1, p.Completed)
			assert.Equal(t, 50, p.Progress)
		}
	}
}
