package services

import (
	"fmt"
	"time"
)

// Period selects a calendar-aligned window for the period-filtered
// read-models. Comparisons use local calendar fields, not elapsed time:
// "this week" flips at midnight Sunday, not on a rolling 7-day basis.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// AllPeriods lists every valid period selector
var AllPeriods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly}

// ParsePeriod validates a period selector from user input
func ParsePeriod(s string) (Period, error) {
	for _, p := range AllPeriods {
		if s == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid period: expected daily, weekly, monthly or yearly")
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// SameWeek reports whether a and b fall in the same Sunday-to-Saturday week
func SameWeek(a, b time.Time) bool {
	return SameDay(weekStart(a), weekStart(b))
}

// weekStart returns midnight on the Sunday of t's week
func weekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// SameMonth reports whether a and b fall in the same calendar month and year
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameYear reports whether a and b fall in the same calendar year
func SameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}

// InPeriod reports whether t falls inside the window selected by p around now
func InPeriod(t, now time.Time, p Period) bool {
	switch p {
	case PeriodDaily:
		return SameDay(t, now)
	case PeriodWeekly:
		return SameWeek(t, now)
	case PeriodMonthly:
		return SameMonth(t, now)
	case PeriodYearly:
		return SameYear(t, now)
	default:
		return false
	}
}
