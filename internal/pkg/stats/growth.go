package stats

import "strconv"

// PercentChange formats the relative change between two period counts for
// display, to one decimal place. A zero previous-period baseline is reported
// as "100" when the current count is positive and "0" otherwise, matching
// the figures the dashboard has always shown.
func PercentChange(previous, current int) string {
	if previous > 0 {
		change := (float64(current) - float64(previous)) / float64(previous) * 100
		return strconv.FormatFloat(change, 'f', 1, 64)
	}
	if current > 0 {
		return "100"
	}
	return "0"
}

// Percent formats part/total as a percentage with one decimal place,
// returning "0" when total is zero.
func Percent(part, total int) string {
	if total <= 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(part)/float64(total)*100, 'f', 1, 64)
}
