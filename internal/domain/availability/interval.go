package availability

// Interval is the half-open range [Start, Start+Duration) in minutes since midnight.
type Interval struct {
	Start    Minute
	Duration int
}

func (i Interval) End() Minute {
	return i.Start + Minute(i.Duration)
}

// Overlaps reports whether the two half-open intervals intersect. Touching ends do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return !(i.End() <= o.Start || i.Start >= o.End())
}

// IsAvailable reports whether candidate conflicts with none of booked.
// Zero durations are rejected by callers before reaching here.
func IsAvailable(candidate Interval, booked []Interval) bool {
	for _, b := range booked {
		if candidate.Overlaps(b) {
			return false
		}
	}
	return true
}

// IsLabelAvailable is IsAvailable for a "HH:MM-HH:MM" slot label whose start is used as
// the candidate start; the label's own width is ignored in favour of duration.
func IsLabelAvailable(label string, duration int, booked []Interval) (bool, error) {
	start, _, err := ParseSlotLabel(label)
	if err != nil {
		return false, err
	}
	return IsAvailable(Interval{Start: start, Duration: duration}, booked), nil
}
