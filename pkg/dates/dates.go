// Package dates provides day-granularity helpers shared by the query,
// calendar and dashboard packages. All comparisons use the wall-clock day in
// the local time zone so that two timestamps with different times on the same
// calendar day compare equal.
package dates

import "time"

// DayKeyFormat is the layout used for date-keyed groupings.
const DayKeyFormat = "2006-01-02"

// StartOfDay truncates t to midnight of its local calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// DayKey renders t as a YYYY-MM-DD grouping key.
func DayKey(t time.Time) string {
	return t.Local().Format(DayKeyFormat)
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// EndOfWeek returns midnight of the Saturday on or after t.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns midnight of the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// DaysBetween returns the number of calendar days from a's day to b's day,
// negative when b is earlier. Midnight-to-midnight spans are not always 24
// hours across DST transitions, so the duration-based estimate is corrected
// by stepping whole calendar days.
func DaysBetween(a, b time.Time) int {
	from := StartOfDay(a)
	to := StartOfDay(b)

	days := int(to.Sub(from).Hours() / 24)
	for from.AddDate(0, 0, days).Before(to) {
		days++
	}
	for from.AddDate(0, 0, days).After(to) {
		days--
	}
	return days
}

// RelativeLabel renders a date the way a task card shows it: Today, Tomorrow,
// Yesterday, the weekday name within a week of now, otherwise "Jan 02".
func RelativeLabel(t, now time.Time) string {
	day := StartOfDay(t)

	switch diff := DaysBetween(now, t); {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff == -1:
		return "Yesterday"
	case diff >= -7 && diff <= 7:
		return day.Weekday().String()
	}
	return day.Format("Jan 02")
}
