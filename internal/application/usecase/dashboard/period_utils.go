// Package dashboard contains the ledger aggregation use cases. Every use case
// is a pure transform over a ledger snapshot plus a reference "now"; results
// are recomputed per request unless the aggregate cache serves a hit for the
// current ledger version.
package dashboard

import "time"

// TrendWindowDays is the length of the expense trend window, in calendar days.
const TrendWindowDays = 30

// DayKeyLayout is the time layout for calendar-day keys.
const DayKeyLayout = "2006-01-02"

// MonthKeyFor returns the "YYYY-MM" key of the month containing the date.
func MonthKeyFor(date time.Time) string {
	return date.Format("2006-01")
}

// monthBounds returns the half-open [start, end) bounds of the calendar month
// containing the given date, in the date's location.
func monthBounds(date time.Time) (start, end time.Time) {
	start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	end = start.AddDate(0, 1, 0)
	return start, end
}

// inMonth reports whether the date falls within the calendar month of ref.
func inMonth(date, ref time.Time) bool {
	start, end := monthBounds(ref)
	return !date.Before(start) && date.Before(end)
}

// dayStart truncates the date to midnight in its location.
func dayStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// trendBounds returns the inclusive calendar-day bounds of the trailing
// trend window ending at now.
func trendBounds(now time.Time) (first, last time.Time) {
	last = dayStart(now)
	first = last.AddDate(0, 0, -(TrendWindowDays - 1))
	return first, last
}
