package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhub/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub/hrms-backend-go/internal/domain/task"
)

type TaskServiceImpl struct {
	task.TaskRepository
	employee.EmployeeRepository
}

func NewTaskService(taskRepository task.TaskRepository, employeeRepository employee.EmployeeRepository) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository:     taskRepository,
		EmployeeRepository: employeeRepository,
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

// CreateTask implements task.TaskService.
func (t *TaskServiceImpl) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	email, _, err := callerClaims(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	// New tasks always start pending regardless of what the client sends.
	created, err := t.TaskRepository.Create(ctx, task.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      task.StatusPending,
		Priority:    task.Priority(req.Priority),
		DueDate:     req.DueDate,
		AssignedTo:  strings.ToLower(strings.TrimSpace(req.AssignedTo)),
		Project:     strings.TrimSpace(req.Project),
		CreatedBy:   email,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return toResponse(created), nil
}

// GetTask implements task.TaskService.
func (t *TaskServiceImpl) GetTask(ctx context.Context, id string) (task.TaskResponse, error) {
	found, err := t.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return toResponse(found), nil
}

// ListTasks implements task.TaskService.
func (t *TaskServiceImpl) ListTasks(ctx context.Context, filter task.TaskFilter) (task.ListTasksResponse, error) {
	tasks, err := t.TaskRepository.List(ctx, task.TaskFilter{
		AssignedTo: filter.AssignedTo,
		Status:     filter.Status,
	})
	if err != nil {
		return task.ListTasksResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	if filter.Department != "" {
		employees, _, err := t.EmployeeRepository.List(ctx, employee.EmployeeFilter{
			Department: filter.Department,
		})
		if err != nil {
			return task.ListTasksResponse{}, fmt.Errorf("failed to list employees: %w", err)
		}

		emails := make(map[string]bool, len(employees))
		for _, emp := range employees {
			emails[emp.Email] = true
		}
		tasks = task.FilterByAssignees(tasks, emails)
	}

	counts := task.CountsByStatus(tasks)
	sorted := task.SortForDisplay(tasks)

	responses := make([]task.TaskResponse, 0, len(sorted))
	for _, item := range sorted {
		responses = append(responses, toResponse(item))
	}

	return task.ListTasksResponse{
		TotalCount: int64(counts.Total),
		Counts:     toCountsResponse(counts, task.CompletionPercentage(tasks)),
		Tasks:      responses,
	}, nil
}

// GetMyTaskOverview implements task.TaskService.
func (t *TaskServiceImpl) GetMyTaskOverview(ctx context.Context) (task.TaskOverviewResponse, error) {
	email, _, err := callerClaims(ctx)
	if err != nil {
		return task.TaskOverviewResponse{}, err
	}

	tasks, err := t.TaskRepository.List(ctx, task.TaskFilter{AssignedTo: email})
	if err != nil {
		return task.TaskOverviewResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	counts := task.CountsByStatus(tasks)
	groups := task.GroupByProject(task.SortForDisplay(tasks))

	groupResponses := make([]task.ProjectGroupResponse, 0, len(groups))
	for _, g := range groups {
		items := make([]task.TaskResponse, 0, len(g.Tasks))
		for _, item := range g.Tasks {
			items = append(items, toResponse(item))
		}
		groupResponses = append(groupResponses, task.ProjectGroupResponse{
			Name:  g.Name,
			Tasks: items,
		})
	}

	return task.TaskOverviewResponse{
		Counts:   toCountsResponse(counts, task.CompletionPercentage(tasks)),
		Projects: task.ProgressByProject(tasks),
		Groups:   groupResponses,
	}, nil
}

// UpdateTask implements task.TaskService.
func (t *TaskServiceImpl) UpdateTask(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	found, err := t.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if req.Title != nil {
		found.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		found.Description = *req.Description
	}
	if req.Priority != nil {
		found.Priority = task.Priority(*req.Priority)
	}
	if req.DueDate != nil {
		found.DueDate = *req.DueDate
	}
	if req.AssignedTo != nil {
		found.AssignedTo = strings.ToLower(strings.TrimSpace(*req.AssignedTo))
	}
	if req.Project != nil {
		found.Project = strings.TrimSpace(*req.Project)
	}
	if req.Status != nil {
		found.Status = task.Status(*req.Status)
	}

	if err := t.TaskRepository.Update(ctx, found); err != nil {
		return task.TaskResponse{}, err
	}

	return toResponse(found), nil
}

// UpdateStatus implements task.TaskService.
func (t *TaskServiceImpl) UpdateStatus(ctx context.Context, req task.UpdateStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	email, _, err := callerClaims(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	found, err := t.TaskRepository.GetByID(ctx, req.TaskID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if !strings.EqualFold(found.AssignedTo, email) {
		return task.TaskResponse{}, task.ErrNotAssignee
	}

	found.Status = task.Status(req.NewStatus)
	if err := t.TaskRepository.Update(ctx, found); err != nil {
		return task.TaskResponse{}, err
	}

	return toResponse(found), nil
}

// DeleteTask implements task.TaskService.
func (t *TaskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	return t.TaskRepository.Delete(ctx, id)
}

func toResponse(item task.Task) task.TaskResponse {
	return task.TaskResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Status:      string(item.Status),
		Priority:    string(item.Priority),
		DueDate:     item.DueDate,
		AssignedTo:  item.AssignedTo,
		Project:     item.Project,
		CreatedBy:   item.CreatedBy,
	}
}

func toCountsResponse(counts task.StatusCounts, completionPercent int) task.StatusCountsResponse {
	return task.StatusCountsResponse{
		Pending:           counts.Pending,
		InProgress:        counts.InProgress,
		Completed:         counts.Completed,
		Total:             counts.Total,
		CompletionPercent: completionPercent,
	}
}
