package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, employee_email, employee_name, date, check_in, check_out, status, working_hours, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var status string
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.EmployeeEmail, &a.EmployeeName, &a.Date,
		&a.CheckIn, &a.CheckOut, &status, &a.WorkingHours, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	a.Status = attendance.Status(status)
	return a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if newAttendance.ID == "" {
		newAttendance.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (id, employee_id, employee_email, employee_name, date, check_in, check_out, status, working_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.EmployeeEmail,
		newAttendance.EmployeeName,
		newAttendance.Date,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		string(newAttendance.Status),
		newAttendance.WorkingHours,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeEmail string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_email = $1 AND date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeEmail, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}
	return &a, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in = $2, check_out = $3, status = $4, working_hours = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, a.ID, a.CheckIn, a.CheckOut, string(a.Status), a.WorkingHours)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE date = $1 ORDER BY employee_name ASC`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}

// ListByEmployeeAndMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndMonth(ctx context.Context, employeeEmail string, year int, month int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_email = $1 AND date LIKE $2 ORDER BY date DESC`

	rows, err := q.Query(ctx, query, employeeEmail, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by month: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}
