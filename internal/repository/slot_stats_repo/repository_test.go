package slot_stats_repo

import "testing"

func TestUpdateState(t *testing.T) {
	r := NewSlotStatsRepository()

	r.UpdateState(10, 0)
	r.UpdateState(10, 30)

	state := r.State()

	if state.TotalSpins != 2 {
		t.Errorf("TotalSpins = %d, want 2", state.TotalSpins)
	}
	if state.TotalBet != 20 || state.TotalPayout != 30 {
		t.Errorf("totals = bet %.0f payout %.0f, want 20/30", state.TotalBet, state.TotalPayout)
	}
	if state.CurrentRTP != 150 {
		t.Errorf("CurrentRTP = %.1f, want 150.0", state.CurrentRTP)
	}
	if state.WindowRTP != 150 {
		t.Errorf("WindowRTP = %.1f, want 150.0", state.WindowRTP)
	}
	if len(state.SpinWindow) != 2 {
		t.Errorf("len(SpinWindow) = %d, want 2", len(state.SpinWindow))
	}
}

func TestUpdateStateWindowBound(t *testing.T) {
	r := NewSlotStatsRepository()

	for i := 0; i < defaultWindowSize+100; i++ {
		r.UpdateState(1, 1)
	}

	state := r.State()
	if len(state.SpinWindow) != defaultWindowSize {
		t.Errorf("len(SpinWindow) = %d, want %d", len(state.SpinWindow), defaultWindowSize)
	}
	if state.TotalSpins != defaultWindowSize+100 {
		t.Errorf("TotalSpins = %d, want %d", state.TotalSpins, defaultWindowSize+100)
	}
}
