package helpers

import (
	"context"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// CalendarDaysBetween is the whole-day difference between two timestamps,
// rounded to the nearest day. Negative intervals clamp to 0.
func CalendarDaysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	hours := to.Sub(from).Hours()
	return int(hours/24 + 0.5)
}

// WeekStart truncates to the Monday of the ISO-8601 week, midnight UTC.
func WeekStart(t time.Time) time.Time {
	t = DayStart(t)
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RoundPercent is the nearest-integer percentage of part in total,
// 0 when total is 0.
func RoundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(part)/float64(total)*100 + 0.5)
}
