package finance

import "time"

// =============================================================================
// MONTH ARITHMETIC - Calendar dates for 1-based schedule periods
// =============================================================================

// AddMonths advances a date by n calendar months, clamping the day to the
// end of the target month (Jan 31 + 1 month = Feb 28/29, not Mar 2/3).
// Schedule period p falls on AddMonths(start, p-1).
func AddMonths(d time.Time, n int) time.Time {
	total := int(d.Month()) - 1 + n
	year := d.Year() + total/12
	month := time.Month(total%12 + 1)

	day := d.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PeriodDate returns the calendar date of a 1-based schedule period.
func PeriodDate(start time.Time, period int) time.Time {
	return AddMonths(start, period-1)
}

// YearBoundary reports whether 1-based month m starts a new 12-month year
// relative to month 1. Annual growth steps (rent, recurring costs) apply
// once at each boundary, not continuously.
func YearBoundary(m int) bool {
	return m > 1 && (m-1)%12 == 0
}
