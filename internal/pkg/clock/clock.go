package clock

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat is returned when a display time string does not match
// the expected "H:MM[:SS] AM|PM" pattern.
var ErrInvalidFormat = errors.New("invalid time format")

// Display times are stored the way the UI renders them: 12-hour clock with
// an optional seconds component, e.g. "09:15 AM" or "9:15:30 pm".
var displayTimeRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?\s*([AaPp][Mm])$`)

// ParseDisplayTime parses a 12-hour display time string into minutes since
// local midnight (0-1439). Leading and trailing whitespace is tolerated.
func ParseDisplayTime(text string) (int, error) {
	match := displayTimeRegex.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return 0, ErrInvalidFormat
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, ErrInvalidFormat
	}

	minute, err := strconv.Atoi(match[2])
	if err != nil || minute > 59 {
		return 0, ErrInvalidFormat
	}

	if match[3] != "" {
		second, err := strconv.Atoi(match[3])
		if err != nil || second > 59 {
			return 0, ErrInvalidFormat
		}
	}

	meridiem := strings.ToUpper(match[4])
	if meridiem == "PM" && hour != 12 {
		hour += 12
	} else if meridiem == "AM" && hour == 12 {
		hour = 0
	}

	return hour*60 + minute, nil
}

// FormatDisplayTime renders an instant as the 12-hour display string used
// for stored check-in/check-out times.
func FormatDisplayTime(t time.Time) string {
	return t.Format("03:04 PM")
}

// AtMinuteOfDay reconstructs an instant on the given calendar day from a
// minutes-since-midnight value, in the day's location.
func AtMinuteOfDay(day time.Time, minuteOfDay int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minuteOfDay/60, minuteOfDay%60, 0, 0, day.Location())
}
