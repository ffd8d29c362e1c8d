package model

import (
	"math"
	"time"
)

const hoursPerDay = 24

// Window is a half-open [Start, End) reservation interval. The end point is
// excluded so that back-to-back reservations on the same facility are legal.
type Window struct {
	Start time.Time `db:"start_date"`
	End   time.Time `db:"end_date"`
}

func (w Window) Valid() bool {
	return w.Start.Before(w.End)
}

// Overlaps implements the standard half-open interval intersection test.
// Touching windows (w.End == other.Start) do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// DurationDays returns the window length rounded up to whole days.
func (w Window) DurationDays() int {
	return int(math.Ceil(w.End.Sub(w.Start).Hours() / hoursPerDay))
}

// ShiftDays returns a window of the same whole-day duration starting offset
// days after this one.
func (w Window) ShiftDays(offset int) Window {
	start := w.Start.AddDate(0, 0, offset)

	return Window{
		Start: start,
		End:   start.AddDate(0, 0, w.DurationDays()),
	}
}
