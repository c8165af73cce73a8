package schedule

import "time"

// CandidateSlots steps through the window emitting one candidate interval per
// step. A slot is emitted as long as it starts strictly before closing time,
// even when its end runs past close: the last appointment of the day may
// finish after the doors shut.
func CandidateSlots(date time.Time, w Window, durationMin, intervalMin int) []Interval {
	if durationMin <= 0 || intervalMin <= 0 {
		return nil
	}

	var slots []Interval
	for at := w.Open; at.Before(w.Close); at = at.Add(intervalMin) {
		start := at.On(date)
		slots = append(slots, Interval{
			Start: start,
			End:   start.Add(time.Duration(durationMin) * time.Minute),
		})
	}
	return slots
}

// FreeSlots filters candidates down to those that overlap none of the busy
// intervals. Order is preserved.
func FreeSlots(candidates, busy []Interval) []Interval {
	free := make([]Interval, 0, len(candidates))
	for _, c := range candidates {
		if !overlapsAny(c, busy) {
			free = append(free, c)
		}
	}
	return free
}

func overlapsAny(c Interval, busy []Interval) bool {
	for _, b := range busy {
		if c.Overlaps(b) {
			return true
		}
	}
	return false
}
