// Package engine implements the pure financial derivation functions of the
// Motorista Real backend: daily fixed-cost amortization, maintenance reserve,
// depreciation and the dynamically adjusted daily goal. Every function here is
// side-effect free and recomputed on read; no derived state is ever stored.
package engine

import "time"

// DaysInMonth returns the number of days of the calendar month containing t.
func DaysInMonth(t time.Time) int {
	t = t.UTC()
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysUntilDueDay counts the days from today (inclusive) until the given due
// day of month, wrapping into the next month when the due day already passed.
// The result is never below 1 so it is always safe as a divisor.
func DaysUntilDueDay(today time.Time, dueDay int) int {
	currentDay := today.UTC().Day()
	var days int
	if dueDay >= currentDay {
		days = dueDay - currentDay + 1
	} else {
		days = DaysInMonth(today) - currentDay + dueDay
	}
	if days < 1 {
		days = 1
	}
	return days
}

// RemainingDaysInMonth returns the number of days left in the month of t,
// counting t's own day.
func RemainingDaysInMonth(t time.Time) int {
	return DaysInMonth(t) - t.UTC().Day() + 1
}
