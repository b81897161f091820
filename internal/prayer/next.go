package prayer

import (
	"fmt"
	"time"
)

// NextResult is the outcome of a next-prayer query.
type NextResult struct {
	Next    Entry `json:"next"`
	Current Entry `json:"current"`
	// Tomorrow is set when every prayer of the schedule has passed and the
	// selection wrapped around to fajr.
	Tomorrow bool      `json:"tomorrow"`
	At       time.Time `json:"at"`
	Display  string    `json:"display"`
}

// NextPrayer scans the schedule's prayers in order and returns the first one
// whose minutes since midnight are strictly after now's. After isha it wraps
// to the schedule's own fajr. Current is the prayer preceding Next, isha when
// Next is fajr.
func NextPrayer(s Schedule, now time.Time) NextResult {
	current := now.Hour()*60 + now.Minute()

	idx, tomorrow := -1, false
	for i, p := range s.Prayers {
		if current < p.Minutes() {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx, tomorrow = 0, true
	}

	next := s.Prayers[idx]
	prev := s.Prayers[(idx+len(s.Prayers)-1)%len(s.Prayers)]

	y, m, d := s.Date.Date()
	at := time.Date(y, m, d, next.Hour, next.Minute, 0, 0, s.Date.Location())
	if tomorrow {
		at = at.AddDate(0, 0, 1)
	}

	return NextResult{
		Next:     next,
		Current:  prev,
		Tomorrow: tomorrow,
		At:       at,
		Display:  fmt.Sprintf("Next: %s at %s", next.Label, next.Clock()),
	}
}
