package game

import (
	"errors"
	"fmt"
)

// ErrLowBalance - на балансе недостаточно кредитов для текущей ставки
var ErrLowBalance = errors.New("insufficient credits on the balance")

// InvalidBetError - ставка нарушает ограничение min <= bet <= max
type InvalidBetError struct {
	Bet uint
	Min uint
	Max uint
}

func (e *InvalidBetError) Error() string {
	switch {
	case e.Min > e.Max:
		return fmt.Sprintf("invalid bet: bet_min %d > bet_max %d", e.Min, e.Max)
	case e.Bet < e.Min:
		return fmt.Sprintf("invalid bet: bet %d < bet_min %d", e.Bet, e.Min)
	default:
		return fmt.Sprintf("invalid bet: bet %d > bet_max %d", e.Bet, e.Max)
	}
}

// ValidateBet - проверка ограничения ставки min <= bet <= max.
// Возвращает InvalidBetError при нарушении
func ValidateBet(bet, min, max uint) error {
	if min > max || bet < min || bet > max {
		return &InvalidBetError{Bet: bet, Min: min, Max: max}
	}
	return nil
}

// Game - состояние игрового автомата. Принадлежит единственному владельцу,
// все операции синхронные, никакой внутренней синхронизации нет
type Game struct {
	credits uint
	bet     uint
	betMin  uint
	betMax  uint
	win     uint
	symbols []Symbol
	src     Source
}

// New - создает новую игру с нулевым выигрышем.
// Возвращает InvalidBetError, если конфигурация ставки некорректна.
// Если src равен nil, используется источник на основе math/rand
func New(credits, bet, betMin, betMax uint, src Source) (*Game, error) {
	if err := ValidateBet(bet, betMin, betMax); err != nil {
		return nil, err
	}

	if src == nil {
		src = NewSource()
	}

	return &Game{
		credits: credits,
		bet:     bet,
		betMin:  betMin,
		betMax:  betMax,
		src:     src,
	}, nil
}

// SetBet - сеттер размера ставки.
// Возвращает InvalidBetError, если bet вне [betMin, betMax];
// при ошибке размер ставки не меняется
func (g *Game) SetBet(bet uint) error {
	if err := ValidateBet(bet, g.betMin, g.betMax); err != nil {
		return err
	}

	g.bet = bet

	return nil
}

// Credits - количество кредитов на балансе
func (g *Game) Credits() uint {
	return g.credits
}

// Bet - размер ставки в кредитах
func (g *Game) Bet() uint {
	return g.bet
}

// BetMin - минимально допустимая ставка
func (g *Game) BetMin() uint {
	return g.betMin
}

// BetMax - максимально допустимая ставка
func (g *Game) BetMax() uint {
	return g.betMax
}

// Win - сумма последнего выигрыша
func (g *Game) Win() uint {
	return g.win
}

// Symbols - символы последнего спина (nil до первого спина)
func (g *Game) Symbols() []Symbol {
	return g.symbols
}

// Spin - симулирует вращение барабанов.
//
// Списывает ставку, делает NumReels независимых выдач символов,
// начисляет выигрыш (множитель выплаты * ставка) и запоминает выпавшие
// символы. Возвращает символы на барабанах.
//
// Возвращает ErrLowBalance, если кредитов меньше размера ставки;
// состояние игры при этом не меняется
func (g *Game) Spin() ([]Symbol, error) {
	if g.credits < g.bet {
		return nil, ErrLowBalance
	}

	stops := make([]Symbol, 0, NumReels)
	for i := 0; i < NumReels; i++ {
		stops = append(stops, Random(g.src))
	}

	g.credits -= g.bet
	g.win = Payout(stops) * g.bet
	g.credits += g.win
	g.symbols = stops

	return stops, nil
}

// Snapshot - сериализуемый слепок состояния игры
type Snapshot struct {
	Credits uint     `json:"credits"`
	Bet     uint     `json:"bet"`
	BetMin  uint     `json:"bet_min"`
	BetMax  uint     `json:"bet_max"`
	Win     uint     `json:"win"`
	Symbols []string `json:"symbols,omitempty"`
}

// Snapshot - возвращает все поля состояния для сериализации
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Credits: g.credits,
		Bet:     g.bet,
		BetMin:  g.betMin,
		BetMax:  g.betMax,
		Win:     g.win,
	}
	for _, s := range g.symbols {
		snap.Symbols = append(snap.Symbols, s.String())
	}
	return snap
}
