package slot

import (
	"context"
	"errors"

	"slot_backend/internal/game"
	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
)

// Spin выполняет спин с учётом баланса пользователя
func (s *serv) Spin(ctx context.Context) (*model.SpinResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	// Инициализируем структуру для хранения результата спина
	var res *model.SpinResult

	// Начало транзакции где выполняется процесс спина
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Получаем сохраненное состояние автомата внутри транзакции
		state, err := s.repo.GetState(txCtx, userID)
		if err != nil {
			// Если состояния еще нет, начинаем со ставки по умолчанию
			if !errors.Is(err, model.ErrStateNotFound) {
				return errors.New("failed to get slot state")
			}
			state = &model.SlotState{Bet: s.cfg.BetDefault()}
		}

		// Получаем баланс пользователя
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}

		// Восстанавливаем ядро игры из баланса и сохраненной ставки
		g, err := game.New(uint(balance), state.Bet, s.cfg.BetMin(), s.cfg.BetMax(), s.src)
		if err != nil {
			return err
		}

		// КЛЮЧЕВОЙ ВЫЗОВ
		// Списывает ставку, крутит барабаны, начисляет выигрыш.
		// При нехватке кредитов вернет game.ErrLowBalance, состояние не меняется
		stops, err := g.Spin()
		if err != nil {
			return err
		}

		// Обновление баланса пользователя
		if err := s.userRepo.UpdateBalance(txCtx, userID, int(g.Credits())); err != nil {
			return errors.New("failed to update user balance")
		}

		// Сохраняем состояние автомата
		state.Win = g.Win()
		state.Symbols = symbolNames(stops)
		if err := s.repo.UpsertState(txCtx, userID, state); err != nil {
			return errors.New("failed to update slot state")
		}

		res = &model.SpinResult{
			Symbols:    state.Symbols,
			Multiplier: game.Payout(stops),
			Win:        g.Win(),
			Bet:        state.Bet,
			Balance:    g.Credits(),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Обновляем статистику
	s.statsRepo.UpdateState(float64(res.Bet), float64(res.Win))

	return res, nil
}

// symbolNames - имена символов для хранения и ответа клиенту
func symbolNames(symbols []game.Symbol) []string {
	names := make([]string, 0, len(symbols))
	for _, s := range symbols {
		names = append(names, s.String())
	}
	return names
}
