package timeline

import (
	"math"
	"time"
)

// day is the fixed length used for every instant-to-day conversion.
const day = 24 * time.Hour

// floorDays converts a duration into whole days, rounding toward negative infinity.
func floorDays(d time.Duration) int {
	return int(math.Floor(float64(d) / float64(day)))
}

// ceilDays converts a duration into whole days, rounding partial days up.
func ceilDays(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(day)))
}

// weekStart returns the Monday on or before t, keeping t's time of day.
func weekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		return t.AddDate(0, 0, -6)
	}
	return t.AddDate(0, 0, 1-wd)
}

// firstOfMonth returns midnight on the first day of t's month in t's location.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// daysInMonth returns the number of calendar days in the given month.
func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// inclusiveDays counts calendar days from one date to another, both ends included.
// Only the calendar dates matter, so DST shifts never produce partial days.
func inclusiveDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a)/day) + 1
}

// WeekNumber returns the week label number for t: the ceiling of the
// one-based day of year divided by seven. Week 1 always starts on January 1,
// so it only approximates ISO-8601 numbering.
func WeekNumber(t time.Time) int {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	yearStart := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := float64(d.Sub(yearStart)) / float64(day)
	return int(math.Ceil((days + 1) / 7))
}

// shortMonth returns the three-letter English month name.
func shortMonth(m time.Month) string {
	return m.String()[:3]
}
