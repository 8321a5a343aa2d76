package attendance

import (
	"testing"
	"time"

	"github.com/staffhub/hrms-backend-go/internal/pkg/clock"
)

func strPtr(s string) *string       { return &s }
func floatPtr(f float64) *float64   { return &f }
func day(t *testing.T) time.Time    { t.Helper(); return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

func TestClassifyCheckIn(t *testing.T) {
	cases := []struct {
		minute int
		want   Status
	}{
		{0, StatusPresent},
		{8*60 + 59, StatusPresent},
		{9 * 60, StatusPresent}, // exactly 09:00:00 is not late
		{9*60 + 1, StatusLate},
		{10 * 60, StatusLate},
		{23*60 + 59, StatusLate},
	}
	for _, c := range cases {
		if got := ClassifyCheckIn(c.minute); got != c.want {
			t.Errorf("ClassifyCheckIn(%d) = %q, want %q", c.minute, got, c.want)
		}
	}
}

func TestComputeWorkingHours(t *testing.T) {
	d := day(t)

	cases := []struct {
		checkIn  string
		checkOut time.Time
		want     float64
	}{
		{"09:00 AM", time.Date(2024, 6, 1, 11, 30, 0, 0, time.UTC), 2.5},
		{"08:50 AM", time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC), 8.2},
		{"09:00 AM", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), 0},
		{"09:00 AM", time.Date(2024, 6, 1, 9, 3, 0, 0, time.UTC), 0.1}, // 0.05 rounds up
		{"12:00 AM", time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC), 24.0},
	}
	for _, c := range cases {
		got, err := ComputeWorkingHours(c.checkIn, c.checkOut, d)
		if err != nil {
			t.Errorf("ComputeWorkingHours(%q, %v) returned error: %v", c.checkIn, c.checkOut, err)
			continue
		}
		if got != c.want {
			t.Errorf("ComputeWorkingHours(%q, %v) = %v, want %v", c.checkIn, c.checkOut, got, c.want)
		}
	}
}

func TestComputeWorkingHoursNegativeDuration(t *testing.T) {
	d := day(t)
	checkOut := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	got, err := ComputeWorkingHours("09:00 AM", checkOut, d)
	if err != ErrNegativeDuration {
		t.Fatalf("error = %v, want ErrNegativeDuration", err)
	}
	if got != 0 {
		t.Errorf("value on failure = %v, want 0", got)
	}
}

func TestComputeWorkingHoursInvalidFormat(t *testing.T) {
	d := day(t)
	checkOut := time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)

	if _, err := ComputeWorkingHours("not a time", checkOut, d); err != clock.ErrInvalidFormat {
		t.Fatalf("error = %v, want clock.ErrInvalidFormat", err)
	}
}

func TestAggregateForPeriod(t *testing.T) {
	records := []Attendance{
		{Status: StatusPresent, CheckIn: strPtr("08:45 AM")},
		{Status: StatusLate, CheckIn: strPtr("09:20 AM")},
		{Status: StatusPresent, CheckIn: strPtr("08:50 AM")},
	}

	got := AggregateForPeriod(records, 5)
	want := PeriodSummary{Present: 2, Late: 1, Absent: 2, CheckedIn: 3}
	if got != want {
		t.Errorf("AggregateForPeriod = %+v, want %+v", got, want)
	}
}

func TestAggregateForPeriodNegativeAbsent(t *testing.T) {
	// An undercounted headcount is surfaced as-is, not clamped.
	records := []Attendance{
		{Status: StatusPresent, CheckIn: strPtr("08:45 AM")},
		{Status: StatusPresent, CheckIn: strPtr("08:50 AM")},
	}

	got := AggregateForPeriod(records, 1)
	if got.Absent != -1 {
		t.Errorf("Absent = %d, want -1", got.Absent)
	}
}

func TestAggregateForPeriodEmpty(t *testing.T) {
	got := AggregateForPeriod(nil, 4)
	want := PeriodSummary{Absent: 4}
	if got != want {
		t.Errorf("AggregateForPeriod(nil, 4) = %+v, want %+v", got, want)
	}
}

func TestMonthlyTotals(t *testing.T) {
	records := []Attendance{
		{Status: StatusPresent, WorkingHours: floatPtr(8.2)},
		{Status: StatusLate, WorkingHours: floatPtr(7.5)},
		{Status: StatusPresent, WorkingHours: nil}, // still checked in, counts as 0 hours
	}

	got := MonthlyTotals(records)
	want := MonthlySummary{PresentDays: 2, LateDays: 1, TotalHours: 15.7}
	if got != want {
		t.Errorf("MonthlyTotals = %+v, want %+v", got, want)
	}
}

func TestHoursAsOf(t *testing.T) {
	now := time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)
	records := []Attendance{
		// closed record: stored hours win
		{ID: "a", Date: "2024-06-01", CheckIn: strPtr("08:50 AM"), CheckOut: strPtr("05:00 PM"), WorkingHours: floatPtr(8.2)},
		// open record: 09:00 to 17:00 = 8h
		{ID: "b", Date: "2024-06-01", CheckIn: strPtr("09:00 AM")},
		// malformed check-in: warned and excluded
		{ID: "c", EmployeeEmail: "carol@example.com", Date: "2024-06-01", CheckIn: strPtr("garbage")},
		// never checked in: contributes nothing
		{ID: "d", Date: "2024-06-01"},
	}

	total, warnings := HoursAsOf(records, now)
	if total != 16.2 {
		t.Errorf("total = %v, want 16.2", total)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warnings))
	}
	if warnings[0].RecordID != "c" || warnings[0].EmployeeEmail != "carol@example.com" {
		t.Errorf("unexpected warning: %+v", warnings[0])
	}
}

// End-to-end scenario: Alice present with a full day, Bob late and still
// checked in, Carol never checked in.
func TestDayScenario(t *testing.T) {
	d := day(t)

	aliceOut := time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC)
	aliceHours, err := ComputeWorkingHours("08:50 AM", aliceOut, d)
	if err != nil {
		t.Fatalf("alice hours: %v", err)
	}
	if aliceHours != 8.2 {
		t.Errorf("alice hours = %v, want 8.2", aliceHours)
	}

	records := []Attendance{
		{EmployeeEmail: "alice@example.com", Date: "2024-06-01", Status: StatusPresent,
			CheckIn: strPtr("08:50 AM"), CheckOut: strPtr("05:00 PM"), WorkingHours: &aliceHours},
		{EmployeeEmail: "bob@example.com", Date: "2024-06-01", Status: StatusLate,
			CheckIn: strPtr("09:20 AM")},
	}

	got := AggregateForPeriod(records, 3)
	want := PeriodSummary{Present: 1, Late: 1, Absent: 1, CheckedIn: 2}
	if got != want {
		t.Errorf("AggregateForPeriod = %+v, want %+v", got, want)
	}
}
