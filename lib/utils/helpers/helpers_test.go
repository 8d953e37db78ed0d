package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalendarDaysBetween(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run(`rounds to the nearest day`, func(t *testing.T) {
		require.Equal(t, 0, CalendarDaysBetween(base, base))
		require.Equal(t, 0, CalendarDaysBetween(base, base.Add(11*time.Hour)))
		require.Equal(t, 1, CalendarDaysBetween(base, base.Add(13*time.Hour)))
		require.Equal(t, 12, CalendarDaysBetween(base, base.AddDate(0, 0, 12)))
	})

	t.Run(`negative intervals clamp to zero`, func(t *testing.T) {
		require.Equal(t, 0, CalendarDaysBetween(base, base.AddDate(0, 0, -3)))
	})
}

func TestWeekStart(t *testing.T) {
	t.Run(`midweek truncates to Monday`, func(t *testing.T) {
		// 2026-08-05 is a Wednesday
		got := WeekStart(time.Date(2026, 8, 5, 17, 30, 0, 0, time.UTC))
		require.Equal(t, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run(`Sunday belongs to the preceding Monday`, func(t *testing.T) {
		got := WeekStart(time.Date(2026, 8, 9, 1, 0, 0, 0, time.UTC))
		require.Equal(t, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run(`Monday is a fixed point`, func(t *testing.T) {
		got := WeekStart(time.Date(2026, 8, 3, 23, 59, 0, 0, time.UTC))
		require.Equal(t, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestRoundPercent(t *testing.T) {
	require.Equal(t, 25, RoundPercent(2, 8))
	require.Equal(t, 33, RoundPercent(1, 3))
	require.Equal(t, 67, RoundPercent(2, 3))
	require.Equal(t, 0, RoundPercent(5, 0))
	require.Equal(t, 100, RoundPercent(8, 8))
}

func TestIsContextDone(t *testing.T) {
	require.True(t, IsContextDone(nil))

	ctx, cancel := context.WithCancel(context.Background())
	require.False(t, IsContextDone(ctx))
	cancel()
	require.True(t, IsContextDone(ctx))
}
