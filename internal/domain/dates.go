package domain

import "time"

// LocalDate formats t as YYYY-MM-DD in t's own location. All date-range
// filtering and grouping uses these strings; deriving them from UTC would
// shift sessions near midnight onto the wrong calendar day.
func LocalDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay returns local midnight of t's calendar day
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DaysBetween returns the number of calendar days from earlier to later,
// with both normalized to local midnight first so time-of-day never skews
// the count. Negative when later precedes earlier.
func DaysBetween(earlier, later time.Time) int {
	from := StartOfDay(earlier)
	to := StartOfDay(later)
	// Round absorbs the hour gained or lost on DST transition days
	return int(to.Sub(from).Round(24*time.Hour).Hours() / 24)
}

// WeekBounds returns the week containing ref: the most recent Sunday at
// local midnight through the following Saturday at local end-of-day.
func WeekBounds(ref time.Time) (start, end time.Time) {
	start = StartOfDay(ref).AddDate(0, 0, -int(ref.Weekday()))
	end = start.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
	return start, end
}

// MonthBounds returns the full calendar month: day 1 at local midnight
// through the last day at local end-of-day.
func MonthBounds(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}
