package planner

import (
	"strings"
	"time"
)

const (
	// MinDays and MaxDays bound the plan length.
	MinDays = 3
	MaxDays = 10

	// DefaultDays is the plan length used when the caller has no preference.
	DefaultDays = 5

	// DateLayout is the ISO calendar date format used in DailyPlan.Date.
	DateLayout = "2006-01-02"
)

var startDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"02.01.2006",
}

// ClampDays bounds n to [MinDays, MaxDays].
func ClampDays(n int) int {
	switch {
	case n < MinDays:
		return MinDays
	case n > MaxDays:
		return MaxDays
	default:
		return n
	}
}

// ParseStartDate parses s as a calendar date. The boolean is false when s is
// empty or not a recognised date.
func ParseStartDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return calendarDate(t), true
		}
	}
	return time.Time{}, false
}

// calendarDate drops the time of day, keeping the date as written.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
