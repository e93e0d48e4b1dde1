package game

import "testing"

func TestPayout(t *testing.T) {
	tests := []struct {
		name    string
		symbols []Symbol
		want    uint
	}{
		{"three jackpots", []Symbol{Jackpot, Jackpot, Jackpot}, 1666},
		{"three sevens", []Symbol{Seven, Seven, Seven}, 300},
		{"three triple bars", []Symbol{TripleBar, TripleBar, TripleBar}, 100},
		{"three double bars", []Symbol{DoubleBar, DoubleBar, DoubleBar}, 50},
		{"three bars", []Symbol{Bar, Bar, Bar}, 25},
		{"three cherries", []Symbol{Cherry, Cherry, Cherry}, 12},
		{"mixed bar family", []Symbol{Bar, DoubleBar, TripleBar}, 12},
		{"two cherries", []Symbol{Cherry, Cherry, Blank}, 6},
		{"one cherry", []Symbol{Bar, Blank, Cherry}, 3},
		{"no win", []Symbol{Bar, Blank, Seven}, 0},
		{"two bars one blank", []Symbol{Bar, TripleBar, Blank}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Payout(tt.symbols); got != tt.want {
				t.Errorf("Payout(%v) = %d, want %d", tt.symbols, got, tt.want)
			}
		})
	}
}

func TestPayoutWrongReelCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Payout with 4 symbols did not panic")
		}
	}()

	Payout([]Symbol{Bar, Blank, Blank, Bar})
}
