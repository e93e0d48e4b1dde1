package game

import "fmt"

// Количество барабанов
const NumReels = 3

// Семейство Bar. Три любых символа из семейства платят как три Cherry -
// правило закреплено таблицей выплат и не распространяется на другие семейства
var barFamily = map[Symbol]bool{
	Bar:       true,
	DoubleBar: true,
	TripleBar: true,
}

// Payout - рассчитывает множитель выплаты для выпавших символов.
// Порядок проверок важен: условия пересекаются (три Cherry против двух Cherry),
// срабатывает первое совпадение сверху вниз.
//
// Паникует, если количество символов не равно NumReels: функция вызывается
// только изнутри ядра с фиксированной длиной выдачи
func Payout(symbols []Symbol) uint {
	if len(symbols) != NumReels {
		panic(fmt.Sprintf("game: payout expects %d symbols, got %d", NumReels, len(symbols)))
	}

	switch {
	case isAll(symbols, Jackpot):
		return 1666
	case isAll(symbols, Seven):
		return 300
	case isAll(symbols, TripleBar):
		return 100
	case isAll(symbols, DoubleBar):
		return 50
	case isAll(symbols, Bar):
		return 25
	case isAll(symbols, Cherry) || countFamily(symbols, barFamily) == NumReels:
		return 12
	case count(symbols, Cherry) == 2:
		return 6
	case count(symbols, Cherry) == 1:
		return 3
	}

	return 0
}

// isAll - true, если все символы равны expected
func isAll(symbols []Symbol, expected Symbol) bool {
	for _, s := range symbols {
		if s != expected {
			return false
		}
	}
	return true
}

// count - количество символов, равных expected
func count(symbols []Symbol, expected Symbol) int {
	n := 0
	for _, s := range symbols {
		if s == expected {
			n++
		}
	}
	return n
}

// countFamily - количество символов, входящих в семейство family
func countFamily(symbols []Symbol, family map[Symbol]bool) int {
	n := 0
	for _, s := range symbols {
		if family[s] {
			n++
		}
	}
	return n
}
