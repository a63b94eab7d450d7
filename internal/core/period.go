package core

import "time"

// TimePeriod names a calendar window ending at "now".
type TimePeriod string

const (
	PeriodDay     TimePeriod = "Today"
	PeriodWeek    TimePeriod = "This Week"
	PeriodMonth   TimePeriod = "This Month"
	PeriodQuarter TimePeriod = "This Quarter"
	PeriodYear    TimePeriod = "This Year"
	PeriodAll     TimePeriod = "All Time"
)

// TimePeriods returns every period in display order.
func TimePeriods() []TimePeriod {
	return []TimePeriod{
		PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear, PeriodAll,
	}
}

// PeriodStart returns the start of the calendar unit containing now.
// Weeks start on Monday. PeriodAll has no lower bound and returns the
// zero time.
func PeriodStart(period TimePeriod, now time.Time) time.Time {
	switch period {
	case PeriodDay:
		return StartOfDay(now)
	case PeriodWeek:
		day := StartOfDay(now)
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodQuarter:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		return time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}

// FilterByPeriod keeps expenses dated at or after the window start,
// preserving order. Future-dated records are never excluded.
func FilterByPeriod(expenses []Expense, period TimePeriod, now time.Time) []Expense {
	if period == PeriodAll {
		return expenses
	}
	start := PeriodStart(period, now)
	filtered := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if !e.Date.Before(start) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthStart truncates t to the first day of its calendar month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole calendar days from one date to another.
// The result is negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24)
}
