package game

import (
	"errors"
	"testing"
)

func TestFromNumberBoundaries(t *testing.T) {
	tests := []struct {
		number uint32
		want   Symbol
	}{
		{0, Blank},
		{72, Blank},
		{73, Cherry},
		{77, Cherry},
		{78, Bar},
		{93, Bar},
		{94, DoubleBar},
		{106, DoubleBar},
		{107, TripleBar},
		{117, TripleBar},
		{118, Seven},
		{125, Seven},
		{126, Jackpot},
		{127, Jackpot},
	}

	for _, tt := range tests {
		got, err := FromNumber(tt.number)
		if err != nil {
			t.Fatalf("FromNumber(%d) unexpected error: %v", tt.number, err)
		}
		if got != tt.want {
			t.Errorf("FromNumber(%d) = %v, want %v", tt.number, got, tt.want)
		}
	}
}

// Диапазоны символов должны непрерывно покрывать [NumberMin, NumberMax]:
// внутри диапазона ошибок нет, соседние числа меняют символ только на границах
func TestFromNumberPartition(t *testing.T) {
	prev, err := FromNumber(NumberMin)
	if err != nil {
		t.Fatalf("FromNumber(%d) unexpected error: %v", NumberMin, err)
	}

	changes := 0
	for n := uint32(NumberMin + 1); n <= NumberMax; n++ {
		s, err := FromNumber(n)
		if err != nil {
			t.Fatalf("FromNumber(%d) unexpected error: %v", n, err)
		}
		if s != prev {
			changes++
			prev = s
		}
	}

	// 7 категорий - ровно 6 переходов между ними
	if changes != 6 {
		t.Errorf("got %d symbol transitions over the range, want 6", changes)
	}
}

func TestFromNumberOutOfRange(t *testing.T) {
	for _, n := range []uint32{NumberMax + 1, 1000, ^uint32(0)} {
		_, err := FromNumber(n)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("FromNumber(%d) error = %v, want ErrOutOfRange", n, err)
		}
	}
}

// Скриптованный источник для тестов
type scriptSource struct {
	numbers []uint32
	pos     int
}

func (s *scriptSource) Draw() uint32 {
	n := s.numbers[s.pos%len(s.numbers)]
	s.pos++
	return n
}

func TestRandom(t *testing.T) {
	src := &scriptSource{numbers: []uint32{126, 0, 73}}

	for _, want := range []Symbol{Jackpot, Blank, Cherry} {
		if got := Random(src); got != want {
			t.Errorf("Random() = %v, want %v", got, want)
		}
	}
}

func TestRandomDefaultSource(t *testing.T) {
	src := NewSource()

	// Настоящий источник обязан всегда попадать в допустимый диапазон
	for i := 0; i < 1000; i++ {
		n := src.Draw()
		if n > NumberMax {
			t.Fatalf("Draw() = %d, out of range", n)
		}
	}
}
