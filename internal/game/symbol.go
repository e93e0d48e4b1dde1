package game

import (
	"errors"
	"math/rand"
)

const (
	// Диапазон чисел, для которых существуют соответствующие символы
	NumberMin = 0
	NumberMax = 127
)

// ErrOutOfRange - число вне диапазона [NumberMin, NumberMax]
var ErrOutOfRange = errors.New("number out of symbol range")

// Symbol - символ на барабане
type Symbol uint8

const (
	Blank Symbol = iota
	Cherry
	Bar
	DoubleBar
	TripleBar
	Seven
	Jackpot
)

var symbolNames = map[Symbol]string{
	Blank:     "Blank",
	Cherry:    "Cherry",
	Bar:       "Bar",
	DoubleBar: "DoubleBar",
	TripleBar: "TripleBar",
	Seven:     "Seven",
	Jackpot:   "Jackpot",
}

func (s Symbol) String() string {
	name, ok := symbolNames[s]
	if !ok {
		return "Unknown"
	}
	return name
}

// FromNumber - поиск символа, соответствующего числу number.
// Диапазоны непрерывны и полностью покрывают [NumberMin, NumberMax].
// Возвращает ErrOutOfRange, если number вне диапазона
func FromNumber(number uint32) (Symbol, error) {
	switch {
	case number <= 72:
		return Blank, nil
	case number <= 77:
		return Cherry, nil
	case number <= 93:
		return Bar, nil
	case number <= 106:
		return DoubleBar, nil
	case number <= 117:
		return TripleBar, nil
	case number <= 125:
		return Seven, nil
	case number <= 127:
		return Jackpot, nil
	default:
		return Blank, ErrOutOfRange
	}
}

// Source - источник равномерно распределенных чисел в [NumberMin, NumberMax].
// Абстракция над генератором, чтобы в тестах подставлять детерминированные
// последовательности вместо настоящей случайности
type Source interface {
	Draw() uint32
}

type randSource struct{}

func (randSource) Draw() uint32 {
	return uint32(rand.Intn(NumberMax + 1))
}

// NewSource - источник на основе math/rand
func NewSource() Source {
	return randSource{}
}

// Random - случайный символ из источника src
func Random(src Source) Symbol {
	s, err := FromNumber(src.Draw())
	if err != nil {
		// Источник обязан выдавать числа в допустимом диапазоне
		panic("game: source returned number out of range")
	}
	return s
}
