package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 24 * 60

var (
	ErrInvalidClock = errors.New("time must be formatted as HH:MM")
	ErrInvalidLabel = errors.New("slot label must be formatted as HH:MM-HH:MM")
)

// Minute is a time of day expressed in minutes since midnight.
type Minute int

func ParseClock(s string) (Minute, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, ErrInvalidClock
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, ErrInvalidClock
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, ErrInvalidClock
	}
	v := Minute(h*60 + m)
	if v > MinutesPerDay {
		return 0, ErrInvalidClock
	}
	return v, nil
}

// ParseSlotLabel returns the start and end of a "HH:MM-HH:MM" label.
func ParseSlotLabel(label string) (start, end Minute, err error) {
	from, to, ok := strings.Cut(label, "-")
	if !ok {
		return 0, 0, ErrInvalidLabel
	}
	start, err = ParseClock(from)
	if err != nil {
		return 0, 0, ErrInvalidLabel
	}
	end, err = ParseClock(to)
	if err != nil || end <= start {
		return 0, 0, ErrInvalidLabel
	}
	return start, end, nil
}

func (m Minute) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}
