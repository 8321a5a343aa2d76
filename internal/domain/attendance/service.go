package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the first check-in of the day for the authenticated
	// employee and fixes the present/late status
	CheckIn(ctx context.Context) (CheckInResponse, error)

	// CheckOut completes today's record with check-out time and working hours
	CheckOut(ctx context.Context) (CheckOutResponse, error)

	// GetMyAttendance retrieves the authenticated employee's records and
	// monthly totals
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (MyAttendanceResponse, error)

	// ListAttendance retrieves all records for a date with period aggregates
	// (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
