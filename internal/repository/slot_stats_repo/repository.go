package slot_stats_repo

import (
	"sync"

	repoModel "slot_backend/internal/repository/slot_stats_repo/model"
)

// Размер окна последних спинов для наблюдаемого RTP
const defaultWindowSize = 500

// Реализация репозитория для хранения статистики автомата.
// Таблица выплат фиксирована правилами игры, поэтому статистика только
// накапливается - никакой регулировки отдачи по ней не делается
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.MachineStats
}

// NewSlotStatsRepository - конструктор репозитория с начальным состоянием
func NewSlotStatsRepository() *StatsRepo {
	return &StatsRepo{
		state: repoModel.MachineStats{
			SpinWindow: make([]repoModel.SpinResult, 0),
			WindowSize: defaultWindowSize,
		},
	}
}

// State - получение текущей статистики автомата.
// Возвращает копию структуры MachineStats
func (r *StatsRepo) State() repoModel.MachineStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}

// UpdateState - обновление статистики после спина
func (r *StatsRepo) UpdateState(bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = r.state.TotalPayout / r.state.TotalBet * 100
	}

	// Добавляем спин в окно
	spinRTP := 0.0
	if bet > 0 {
		spinRTP = payout / bet * 100
	}
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Bet:    bet,
		Payout: payout,
		RTP:    spinRTP,
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	// Пересчитываем RTP в окне
	var windowBet, windowPayout float64
	for _, spin := range r.state.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}

	if windowBet > 0 {
		r.state.WindowRTP = windowPayout / windowBet * 100
	} else {
		r.state.WindowRTP = 0
	}
}
