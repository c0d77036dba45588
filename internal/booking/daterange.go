package booking

import "time"

// RangeState names the phase of the two-click date-range picker.
type RangeState int

const (
	// RangeEmpty means no date has been chosen yet.
	RangeEmpty RangeState = iota
	// RangeStart means only the check-in date has been chosen.
	RangeStart
	// RangeComplete means both ends of the range are chosen.
	RangeComplete
)

func (s RangeState) String() string {
	switch s {
	case RangeEmpty:
		return "empty"
	case RangeStart:
		return "start"
	case RangeComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// RangeSelection is the picker's state: an ordered pair of dates.
// The zero value is an empty selection.
type RangeSelection struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// State derives the current phase from which dates are set.
func (s RangeSelection) State() RangeState {
	switch {
	case s.CheckIn.IsZero():
		return RangeEmpty
	case s.CheckOut.IsZero():
		return RangeStart
	default:
		return RangeComplete
	}
}

// Click applies one calendar click and returns the next selection:
//
//   - empty: the click becomes check-in.
//   - start: a later click becomes check-out; an earlier click swaps
//     the pair so check-in stays before check-out; clicking the same
//     day restarts with that day as check-in.
//   - complete: the cycle restarts with the click as the new check-in.
func (s RangeSelection) Click(day time.Time) RangeSelection {
	day = midnight(day)

	switch s.State() {
	case RangeEmpty:
		return RangeSelection{CheckIn: day}
	case RangeStart:
		switch {
		case day.After(s.CheckIn):
			return RangeSelection{CheckIn: s.CheckIn, CheckOut: day}
		case day.Before(s.CheckIn):
			return RangeSelection{CheckIn: day, CheckOut: s.CheckIn}
		default:
			return RangeSelection{CheckIn: day}
		}
	default:
		return RangeSelection{CheckIn: day}
	}
}
