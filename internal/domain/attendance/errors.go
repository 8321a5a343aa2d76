package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")

	// ErrNegativeDuration rejects a check-out that precedes the reconstructed
	// check-in instant. The check-out attempt is not recorded.
	ErrNegativeDuration = errors.New("check-out time cannot be before check-in time")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
