package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidWindow    = errors.New("window start must be before end")
)

// TimeOfDay is a wall-clock "HH:MM" within a business-local day. No timezone
// is attached anywhere in the engine; dates and times combine as naive values.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: h*60 + m}, nil
}

func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.minutes < o.minutes }

func (t TimeOfDay) Add(mins int) TimeOfDay { return TimeOfDay{minutes: t.minutes + mins} }

// On anchors the time of day to a calendar date as a naive timestamp.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.minutes/60, t.minutes%60, 0, 0, time.UTC)
}

func Later(a, b TimeOfDay) TimeOfDay {
	if a.Before(b) {
		return b
	}
	return a
}

func Earlier(a, b TimeOfDay) TimeOfDay {
	if a.Before(b) {
		return a
	}
	return b
}

// Window is a day's open/close pair.
type Window struct {
	Open  TimeOfDay
	Close TimeOfDay
}

func NewWindow(open, close TimeOfDay) (Window, error) {
	if !open.Before(close) {
		return Window{}, ErrInvalidWindow
	}
	return Window{Open: open, Close: close}, nil
}

// Intersect narrows w by o: later open, earlier close. The second return is
// false when the intersection is empty.
func (w Window) Intersect(o Window) (Window, bool) {
	open := Later(w.Open, o.Open)
	close := Earlier(w.Close, o.Close)
	if !open.Before(close) {
		return Window{}, false
	}
	return Window{Open: open, Close: close}, true
}

// Interval is a half-open [Start, End) span of naive timestamps.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect:
// [s1,e1) and [s2,e2) conflict iff s1 < e2 && s2 < e1.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Settings are a business's schedule defaults. A business without settings is
// unconfigured and must produce empty availability, never invented defaults.
type Settings struct {
	StartTime   TimeOfDay
	EndTime     TimeOfDay
	IntervalMin int
	WorkingDays []int // 0=Sunday .. 6=Saturday
}

func (s *Settings) WorksOn(dayOfWeek int) bool {
	for _, d := range s.WorkingDays {
		if d == dayOfWeek {
			return true
		}
	}
	return false
}

// DayHours is one working_hours row: staff-specific when StaffID is set,
// the business-wide default for the day otherwise.
type DayHours struct {
	DayOfWeek int
	Window    Window
	IsActive  bool
}
