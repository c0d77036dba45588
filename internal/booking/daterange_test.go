package booking

import (
	"testing"
)

func TestRangeSelectionStates(t *testing.T) {
	var sel RangeSelection
	if sel.State() != RangeEmpty {
		t.Fatalf("zero selection state = %v, want empty", sel.State())
	}

	sel = sel.Click(date("2024-05-10"))
	if sel.State() != RangeStart {
		t.Fatalf("after first click state = %v, want start", sel.State())
	}
	if !sel.CheckIn.Equal(date("2024-05-10")) {
		t.Errorf("check-in = %v, want 2024-05-10", sel.CheckIn)
	}

	sel = sel.Click(date("2024-05-13"))
	if sel.State() != RangeComplete {
		t.Fatalf("after second click state = %v, want complete", sel.State())
	}
	if !sel.CheckOut.Equal(date("2024-05-13")) {
		t.Errorf("check-out = %v, want 2024-05-13", sel.CheckOut)
	}
}

func TestRangeSelectionReordersEarlierSecondClick(t *testing.T) {
	sel := RangeSelection{}.Click(date("2024-05-13")).Click(date("2024-05-10"))

	if sel.State() != RangeComplete {
		t.Fatalf("state = %v, want complete", sel.State())
	}
	if !sel.CheckIn.Equal(date("2024-05-10")) || !sel.CheckOut.Equal(date("2024-05-13")) {
		t.Errorf("pair = (%v, %v), want reordered (2024-05-10, 2024-05-13)", sel.CheckIn, sel.CheckOut)
	}
}

func TestRangeSelectionSameDayClickRestarts(t *testing.T) {
	sel := RangeSelection{}.Click(date("2024-05-10")).Click(date("2024-05-10"))

	if sel.State() != RangeStart {
		t.Fatalf("state = %v, want start", sel.State())
	}
	if !sel.CheckOut.IsZero() {
		t.Errorf("check-out should be unset, got %v", sel.CheckOut)
	}
}

func TestRangeSelectionThirdClickRestartsCycle(t *testing.T) {
	sel := RangeSelection{}.
		Click(date("2024-05-10")).
		Click(date("2024-05-13")).
		Click(date("2024-06-01"))

	if sel.State() != RangeStart {
		t.Fatalf("state = %v, want start", sel.State())
	}
	if !sel.CheckIn.Equal(date("2024-06-01")) {
		t.Errorf("check-in = %v, want 2024-06-01", sel.CheckIn)
	}
	if !sel.CheckOut.IsZero() {
		t.Errorf("check-out should be cleared, got %v", sel.CheckOut)
	}
}

func TestRangeStateString(t *testing.T) {
	for state, want := range map[RangeState]string{
		RangeEmpty:    "empty",
		RangeStart:    "start",
		RangeComplete: "complete",
	} {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", state, got, want)
		}
	}
}
