//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"bookingcore/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid last minute", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", errIs: schedule.ErrInvalidTimeOfDay},
		{name: "minute out of range", input: "10:60", errIs: schedule.ErrInvalidTimeOfDay},
		{name: "missing zero padding", input: "9:00", errIs: schedule.ErrInvalidTimeOfDay},
		{name: "no colon", input: "09-00", errIs: schedule.ErrInvalidTimeOfDay},
		{name: "empty", input: "", errIs: schedule.ErrInvalidTimeOfDay},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := schedule.ParseTimeOfDay(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestWindowIntersect(t *testing.T) {
	win := func(open, close string) schedule.Window {
		w, err := schedule.NewWindow(schedule.MustTimeOfDay(open), schedule.MustTimeOfDay(close))
		require.NoError(t, err)
		return w
	}

	t.Run("narrowing keeps later open and earlier close", func(t *testing.T) {
		got, ok := win("09:00", "18:00").Intersect(win("10:00", "16:00"))
		require.True(t, ok)
		assert.Equal(t, "10:00", got.Open.String())
		assert.Equal(t, "16:00", got.Close.String())
	})

	t.Run("override cannot widen the base window", func(t *testing.T) {
		got, ok := win("09:00", "18:00").Intersect(win("08:00", "20:00"))
		require.True(t, ok)
		assert.Equal(t, "09:00", got.Open.String())
		assert.Equal(t, "18:00", got.Close.String())
	})

	t.Run("disjoint windows are empty", func(t *testing.T) {
		_, ok := win("09:00", "12:00").Intersect(win("13:00", "18:00"))
		assert.False(t, ok)
	})

	t.Run("touching windows are empty", func(t *testing.T) {
		_, ok := win("09:00", "12:00").Intersect(win("12:00", "18:00"))
		assert.False(t, ok)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }
	iv := func(sh, sm, eh, em int) schedule.Interval {
		return schedule.Interval{Start: at(sh, sm), End: at(eh, em)}
	}

	cases := []struct {
		name string
		a, b schedule.Interval
		want bool
	}{
		{name: "identical", a: iv(10, 0, 11, 0), b: iv(10, 0, 11, 0), want: true},
		{name: "partial overlap", a: iv(10, 0, 11, 0), b: iv(10, 30, 11, 30), want: true},
		{name: "containment", a: iv(10, 0, 12, 0), b: iv(10, 30, 11, 0), want: true},
		{name: "back to back does not conflict", a: iv(10, 0, 11, 0), b: iv(11, 0, 12, 0), want: false},
		{name: "back to back reversed", a: iv(11, 0, 12, 0), b: iv(10, 0, 11, 0), want: false},
		{name: "disjoint", a: iv(9, 0, 10, 0), b: iv(14, 0, 15, 0), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestResolveDayWindow(t *testing.T) {
	settings := &schedule.Settings{
		StartTime:   schedule.MustTimeOfDay("09:00"),
		EndTime:     schedule.MustTimeOfDay("18:00"),
		IntervalMin: 30,
		WorkingDays: []int{1, 2, 3, 4, 5},
	}
	day := func(open, close string, active bool) *schedule.DayHours {
		return &schedule.DayHours{
			DayOfWeek: 1,
			Window: schedule.Window{
				Open:  schedule.MustTimeOfDay(open),
				Close: schedule.MustTimeOfDay(close),
			},
			IsActive: active,
		}
	}

	t.Run("staff module disabled uses settings window on working days", func(t *testing.T) {
		got, ok := schedule.ResolveDayWindow(false, settings, 1, nil, nil)
		require.True(t, ok)
		assert.Equal(t, "09:00", got.Open.String())
		assert.Equal(t, "18:00", got.Close.String())
	})

	t.Run("staff module disabled is closed on non working days", func(t *testing.T) {
		_, ok := schedule.ResolveDayWindow(false, settings, 0, nil, nil)
		assert.False(t, ok)
	})

	t.Run("nil settings is closed", func(t *testing.T) {
		_, ok := schedule.ResolveDayWindow(false, nil, 1, nil, nil)
		assert.False(t, ok)
	})

	t.Run("staff module without business row is closed", func(t *testing.T) {
		_, ok := schedule.ResolveDayWindow(true, settings, 1, nil, day("10:00", "14:00", true))
		assert.False(t, ok)
	})

	t.Run("inactive business day cannot be reopened by staff", func(t *testing.T) {
		_, ok := schedule.ResolveDayWindow(true, settings, 1, day("09:00", "18:00", false), day("10:00", "14:00", true))
		assert.False(t, ok)
	})

	t.Run("staff override narrows business hours", func(t *testing.T) {
		got, ok := schedule.ResolveDayWindow(true, settings, 1, day("09:00", "18:00", true), day("08:00", "14:00", true))
		require.True(t, ok)
		assert.Equal(t, "09:00", got.Open.String())
		assert.Equal(t, "14:00", got.Close.String())
	})

	t.Run("inactive staff override closes the day", func(t *testing.T) {
		_, ok := schedule.ResolveDayWindow(true, settings, 1, day("09:00", "18:00", true), day("10:00", "14:00", false))
		assert.False(t, ok)
	})

	t.Run("without staff override business hours apply", func(t *testing.T) {
		got, ok := schedule.ResolveDayWindow(true, settings, 1, day("10:00", "16:00", true), nil)
		require.True(t, ok)
		assert.Equal(t, "10:00", got.Open.String())
		assert.Equal(t, "16:00", got.Close.String())
	})
}

func TestCandidateSlots(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	window := schedule.Window{
		Open:  schedule.MustTimeOfDay("09:00"),
		Close: schedule.MustTimeOfDay("10:00"),
	}

	t.Run("last slot may end past closing", func(t *testing.T) {
		got := schedule.CandidateSlots(date, window, 45, 30)
		want := []schedule.Interval{
			{Start: date.Add(9 * time.Hour), End: date.Add(9*time.Hour + 45*time.Minute)},
			{Start: date.Add(9*time.Hour + 30*time.Minute), End: date.Add(10*time.Hour + 15*time.Minute)},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("slot starting exactly at close is excluded", func(t *testing.T) {
		got := schedule.CandidateSlots(date, window, 30, 30)
		require.Len(t, got, 2)
		assert.Equal(t, date.Add(9*time.Hour+30*time.Minute), got[1].Start)
	})

	t.Run("non positive inputs yield nothing", func(t *testing.T) {
		assert.Nil(t, schedule.CandidateSlots(date, window, 0, 30))
		assert.Nil(t, schedule.CandidateSlots(date, window, 30, 0))
	})
}

func TestFreeSlots(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	window := schedule.Window{
		Open:  schedule.MustTimeOfDay("09:00"),
		Close: schedule.MustTimeOfDay("12:00"),
	}
	candidates := schedule.CandidateSlots(date, window, 60, 60)
	require.Len(t, candidates, 3)

	busy := []schedule.Interval{
		{Start: date.Add(10 * time.Hour), End: date.Add(11 * time.Hour)},
	}

	got := schedule.FreeSlots(candidates, busy)
	require.Len(t, got, 2)
	assert.Equal(t, date.Add(9*time.Hour), got[0].Start)
	assert.Equal(t, date.Add(11*time.Hour), got[1].Start)

	t.Run("no busy intervals keeps everything", func(t *testing.T) {
		assert.Len(t, schedule.FreeSlots(candidates, nil), 3)
	})
}
