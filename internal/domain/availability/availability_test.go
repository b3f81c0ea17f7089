//go:build unit

package availability_test

import (
	"slices"
	"testing"
	"time"

	"salon-booking/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, clock string) availability.Minute {
	t.Helper()
	m, err := availability.ParseClock(clock)
	require.NoError(t, err)
	return m
}

func labels(seq func(func(availability.Slot) bool)) []string {
	var out []string
	for s := range seq {
		out = append(out, s.Label())
	}
	return out
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in    string
		want  availability.Minute
		errIs error
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "9:05", want: 545},
		{in: "24:00", want: 1440},
		{in: "24:01", errIs: availability.ErrInvalidClock},
		{in: "12:60", errIs: availability.ErrInvalidClock},
		{in: "1200", errIs: availability.ErrInvalidClock},
		{in: "ab:cd", errIs: availability.ErrInvalidClock},
		{in: "", errIs: availability.ErrInvalidClock},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := availability.ParseClock(c.in)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
			assert.Len(t, got.String(), 5)
		})
	}
}

func TestParseSlotLabel(t *testing.T) {
	start, end, err := availability.ParseSlotLabel("10:00-11:00")
	require.NoError(t, err)
	assert.Equal(t, availability.Minute(600), start)
	assert.Equal(t, availability.Minute(660), end)

	for _, bad := range []string{"10:00", "11:00-10:00", "10:00-10:00", "x-11:00"} {
		_, _, err := availability.ParseSlotLabel(bad)
		assert.ErrorIs(t, err, availability.ErrInvalidLabel, bad)
	}
}

func TestIsAvailable(t *testing.T) {
	booked := []availability.Interval{{Start: at(t, "10:00"), Duration: 60}}

	cases := []struct {
		name      string
		candidate availability.Interval
		booked    []availability.Interval
		want      bool
	}{
		{name: "empty booked set", candidate: availability.Interval{Start: at(t, "10:00"), Duration: 600}, want: true},
		{name: "same start", candidate: availability.Interval{Start: at(t, "10:00"), Duration: 60}, booked: booked, want: false},
		{name: "adjacent after", candidate: availability.Interval{Start: at(t, "11:00"), Duration: 60}, booked: booked, want: true},
		{name: "adjacent before", candidate: availability.Interval{Start: at(t, "09:00"), Duration: 60}, booked: booked, want: true},
		{name: "overlaps start", candidate: availability.Interval{Start: at(t, "09:30"), Duration: 60}, booked: booked, want: false},
		{name: "overlaps end", candidate: availability.Interval{Start: at(t, "10:30"), Duration: 60}, booked: booked, want: false},
		{name: "contains booked", candidate: availability.Interval{Start: at(t, "09:00"), Duration: 180}, booked: booked, want: false},
		{name: "contained by booked", candidate: availability.Interval{Start: at(t, "10:15"), Duration: 15}, booked: booked, want: false},
		{
			name:      "fits between two bookings",
			candidate: availability.Interval{Start: at(t, "11:00"), Duration: 60},
			booked:    append(slices.Clone(booked), availability.Interval{Start: at(t, "12:00"), Duration: 30}),
			want:      true,
		},
		{
			name:      "too long for the gap",
			candidate: availability.Interval{Start: at(t, "11:00"), Duration: 90},
			booked:    append(slices.Clone(booked), availability.Interval{Start: at(t, "12:00"), Duration: 30}),
			want:      false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, availability.IsAvailable(c.candidate, c.booked))
		})
	}
}

func TestIsAvailableMatchesPairwisePredicate(t *testing.T) {
	booked := []availability.Interval{
		{Start: 540, Duration: 45},
		{Start: 630, Duration: 60},
		{Start: 800, Duration: 15},
	}
	for start := availability.Minute(480); start <= 900; start += 5 {
		for _, d := range []int{5, 30, 60, 95} {
			c := availability.Interval{Start: start, Duration: d}
			want := true
			for _, b := range booked {
				if !(c.End() <= b.Start || c.Start >= b.End()) {
					want = false
				}
			}
			require.Equal(t, want, availability.IsAvailable(c, booked), "start=%s duration=%d", start, d)
		}
	}
}

func TestOverlapIsSymmetric(t *testing.T) {
	a := availability.Interval{Start: 600, Duration: 120}
	b := availability.Interval{Start: 630, Duration: 30}
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestIsLabelAvailable(t *testing.T) {
	booked := []availability.Interval{{Start: 600, Duration: 60}}

	ok, err := availability.IsLabelAvailable("11:00-12:00", 60, booked)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = availability.IsLabelAvailable("09:00-10:00", 90, booked)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = availability.IsLabelAvailable("nine", 60, booked)
	assert.ErrorIs(t, err, availability.ErrInvalidLabel)
}

func TestSlots(t *testing.T) {
	t.Run("exact window", func(t *testing.T) {
		got := labels(availability.Slots(at(t, "10:00"), at(t, "13:00"), 60))
		assert.Equal(t, []string{"10:00-11:00", "11:00-12:00", "12:00-13:00"}, got)
	})

	t.Run("trailing partial slot dropped", func(t *testing.T) {
		got := labels(availability.Slots(at(t, "10:00"), at(t, "12:30"), 60))
		assert.Equal(t, []string{"10:00-11:00", "11:00-12:00"}, got)
	})

	t.Run("window shorter than a slot", func(t *testing.T) {
		assert.Empty(t, labels(availability.Slots(at(t, "10:00"), at(t, "10:45"), 60)))
	})

	t.Run("restartable", func(t *testing.T) {
		seq := availability.Slots(at(t, "09:00"), at(t, "11:00"), 60)
		assert.Equal(t, labels(seq), labels(seq))
	})

	t.Run("early break", func(t *testing.T) {
		var first availability.Slot
		for s := range availability.Slots(at(t, "09:00"), at(t, "18:00"), 60) {
			first = s
			break
		}
		assert.Equal(t, "09:00-10:00", first.Label())
	})

	t.Run("non-positive granularity yields nothing", func(t *testing.T) {
		assert.Empty(t, labels(availability.Slots(0, 600, 0)))
	})
}

func TestOfferable(t *testing.T) {
	loc := time.FixedZone("IST", 19800)
	open, closing := at(t, "09:00"), at(t, "13:00")

	t.Run("future date keeps every slot", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 11, 20, 0, 0, loc)
		date := time.Date(2026, 3, 11, 0, 0, 0, 0, loc)
		got := labels(availability.Offerable(open, closing, date, now))
		assert.Equal(t, []string{"09:00-10:00", "10:00-11:00", "11:00-12:00", "12:00-13:00"}, got)
	})

	t.Run("today drops started slots", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 11, 20, 0, 0, loc)
		date := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
		got := labels(availability.Offerable(open, closing, date, now))
		assert.Equal(t, []string{"12:00-13:00"}, got)
	})

	t.Run("slot starting exactly now is dropped", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
		date := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
		got := labels(availability.Offerable(open, closing, date, now))
		assert.Equal(t, []string{"11:00-12:00", "12:00-13:00"}, got)
	})
}
