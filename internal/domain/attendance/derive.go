package attendance

import (
	"math"
	"time"

	"github.com/staffhub/hrms-backend-go/internal/pkg/clock"
)

// Check-ins strictly after 09:00 local time are late. Exactly 09:00:00 is
// still present.
const lateCutoffMinute = 9 * 60

// ClassifyCheckIn fixes the status of a new attendance record from the
// check-in minute of day. The status is never recomputed afterwards.
func ClassifyCheckIn(minuteOfDay int) Status {
	if minuteOfDay > lateCutoffMinute {
		return StatusLate
	}
	return StatusPresent
}

// ComputeWorkingHours derives the working-hours figure recorded at check-out.
// The stored check-in display string is parsed, an instant is reconstructed on
// the record's calendar day, and the delta to checkOut is returned in hours
// rounded half-up to one decimal.
//
// Returns clock.ErrInvalidFormat when the check-in string does not parse and
// ErrNegativeDuration when checkOut precedes the reconstructed check-in; in
// both cases no partial value is produced.
func ComputeWorkingHours(checkInText string, checkOut time.Time, day time.Time) (float64, error) {
	minute, err := clock.ParseDisplayTime(checkInText)
	if err != nil {
		return 0, err
	}

	checkIn := clock.AtMinuteOfDay(day, minute)
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		return 0, ErrNegativeDuration
	}

	return roundHours(diff.Hours()), nil
}

func roundHours(hours float64) float64 {
	return math.Floor(hours*10+0.5) / 10
}

// PeriodSummary aggregates one day (or any period) of attendance records.
type PeriodSummary struct {
	Present   int
	Late      int
	Absent    int
	CheckedIn int
}

// AggregateForPeriod counts statuses over a period snapshot. Absent is the
// headcount not covered by a present or late record; it can go negative when
// employeeTotal undercounts and is surfaced as-is rather than clamped.
func AggregateForPeriod(records []Attendance, employeeTotal int) PeriodSummary {
	var summary PeriodSummary
	for _, rec := range records {
		switch rec.Status {
		case StatusPresent:
			summary.Present++
		case StatusLate:
			summary.Late++
		}
		if rec.CheckIn != nil {
			summary.CheckedIn++
		}
	}
	summary.Absent = employeeTotal - summary.Present - summary.Late
	return summary
}

// MonthlySummary totals one employee's records for a month.
type MonthlySummary struct {
	PresentDays int
	LateDays    int
	TotalHours  float64
}

// MonthlyTotals sums the stored working hours alongside day counts, treating
// a missing WorkingHours as zero.
func MonthlyTotals(records []Attendance) MonthlySummary {
	var summary MonthlySummary
	for _, rec := range records {
		switch rec.Status {
		case StatusPresent:
			summary.PresentDays++
		case StatusLate:
			summary.LateDays++
		}
		if rec.WorkingHours != nil {
			summary.TotalHours += *rec.WorkingHours
		}
	}
	return summary
}

// HoursWarning flags a record whose stored check-in string could not be
// parsed during hours derivation. The record is excluded from the total but
// aggregation carries on.
type HoursWarning struct {
	RecordID      string
	EmployeeEmail string
	CheckIn       string
}

// HoursAsOf totals worked hours for a period snapshot as of a reference
// instant. Closed records contribute their stored working hours; open records
// (checked in, not yet out) contribute the time from the reconstructed
// check-in to now. Records with unparseable check-in strings are skipped and
// reported as warnings, never as errors.
func HoursAsOf(records []Attendance, now time.Time) (float64, []HoursWarning) {
	var total float64
	var warnings []HoursWarning

	for _, rec := range records {
		if rec.WorkingHours != nil {
			total += *rec.WorkingHours
			continue
		}
		if rec.CheckIn == nil || rec.CheckOut != nil {
			continue
		}

		minute, err := clock.ParseDisplayTime(*rec.CheckIn)
		if err != nil {
			warnings = append(warnings, HoursWarning{
				RecordID:      rec.ID,
				EmployeeEmail: rec.EmployeeEmail,
				CheckIn:       *rec.CheckIn,
			})
			continue
		}

		day, err := time.ParseInLocation("2006-01-02", rec.Date, now.Location())
		if err != nil {
			warnings = append(warnings, HoursWarning{
				RecordID:      rec.ID,
				EmployeeEmail: rec.EmployeeEmail,
				CheckIn:       *rec.CheckIn,
			})
			continue
		}

		elapsed := now.Sub(clock.AtMinuteOfDay(day, minute))
		if elapsed > 0 {
			total += roundHours(elapsed.Hours())
		}
	}

	return total, warnings
}
