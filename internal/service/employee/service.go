package employee

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffhub/hrms-backend-go/internal/domain/employee"
	"github.com/staffhub/hrms-backend-go/internal/domain/user"
	"github.com/staffhub/hrms-backend-go/internal/pkg/database"
	"github.com/staffhub/hrms-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository, userRepository user.UserRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.JoinDate != "" {
		parsed, err := time.Parse("2006-01-02", req.JoinDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse join date: %w", err)
		}
		joinDate = parsed
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Link an existing user account with the same email, if any, so the
	// employee's self-service endpoints resolve to this record.
	var userID *string
	account, err := e.UserRepository.GetByEmail(ctx, email)
	if err == nil {
		userID = &account.ID
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = e.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:     userID,
			Name:       strings.TrimSpace(req.Name),
			Email:      email,
			Department: strings.TrimSpace(req.Department),
			Position:   strings.TrimSpace(req.Position),
			Status:     employee.StatusActive,
			JoinDate:   joinDate,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	employees, total, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Employees:  responses,
	}, nil
}

// ListDepartments implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListDepartments(ctx context.Context) ([]employee.DepartmentResponse, error) {
	employees, _, err := e.EmployeeRepository.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, emp := range employees {
		if emp.Department == "" {
			continue
		}
		counts[emp.Department]++
	}

	departments := make([]employee.DepartmentResponse, 0, len(counts))
	for name, count := range counts {
		departments = append(departments, employee.DepartmentResponse{
			Name:          name,
			EmployeeCount: count,
		})
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})

	return departments, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Department != nil {
		emp.Department = strings.TrimSpace(*req.Department)
	}
	if req.Position != nil {
		emp.Position = strings.TrimSpace(*req.Position)
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}

	if err := e.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return e.EmployeeRepository.Delete(ctx, id)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Email:      emp.Email,
		Department: emp.Department,
		Position:   emp.Position,
		Status:     string(emp.Status),
		JoinDate:   emp.JoinDate.Format("2006-01-02"),
	}
}
