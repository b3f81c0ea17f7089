package availability

import (
	"iter"
	"time"
)

// Granularity is the fixed slot width offered to customers.
const Granularity = 60

type Slot struct {
	Start Minute
	End   Minute
}

func (s Slot) Label() string {
	return s.Start.String() + "-" + s.End.String()
}

// Slots yields fixed-width slots from open to close. A trailing partial slot is not emitted.
// The sequence is lazy and may be ranged over any number of times.
func Slots(open, close Minute, granularity int) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		if granularity <= 0 {
			return
		}
		step := Minute(granularity)
		for start := open; start+step <= close; start += step {
			if !yield(Slot{Start: start, End: start + step}) {
				return
			}
		}
	}
}

// Offerable narrows Slots for a booking date: when date is today in now's location,
// slots starting at or before now are dropped.
func Offerable(open, close Minute, date, now time.Time) iter.Seq[Slot] {
	all := Slots(open, close, Granularity)
	if !sameDay(date, now) {
		return all
	}
	current := Minute(now.Hour()*60 + now.Minute())
	return func(yield func(Slot) bool) {
		for s := range all {
			if s.Start <= current {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

func sameDay(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
