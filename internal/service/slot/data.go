package slot

import (
	"context"
	"errors"

	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/slot_stats_repo/model"
)

// CheckData возвращает полное состояние автомата пользователя:
// баланс, ставку с границами, последний выигрыш и последние символы
func (s *serv) CheckData(ctx context.Context) (*model.SlotData, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, errors.New("failed to get user balance")
	}

	state, err := s.repo.GetState(ctx, userID)
	if err != nil {
		if !errors.Is(err, model.ErrStateNotFound) {
			return nil, errors.New("failed to get slot state")
		}
		state = &model.SlotState{Bet: s.cfg.BetDefault()}
	}

	return &model.SlotData{
		Balance: uint(balance),
		Bet:     state.Bet,
		BetMin:  s.cfg.BetMin(),
		BetMax:  s.cfg.BetMax(),
		Win:     state.Win,
		Symbols: state.Symbols,
	}, nil
}

// Stats возвращает накопленную статистику автомата
func (s *serv) Stats() statsModel.MachineStats {
	return s.statsRepo.State()
}
