package slot

import (
	"context"
	"errors"

	"slot_backend/internal/game"
	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
)

// SetBet устанавливает размер ставки пользователя.
// Возвращает game.InvalidBetError, если bet вне [BetMin, BetMax];
// сохраненная ставка при этом не меняется
func (s *serv) SetBet(ctx context.Context, bet uint) error {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return errors.New("user id not found in context")
	}

	// Валидация ставки правилами ядра, без молчаливой подгонки к границам
	if err := game.ValidateBet(bet, s.cfg.BetMin(), s.cfg.BetMax()); err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.repo.GetState(txCtx, userID)
		if err != nil {
			if !errors.Is(err, model.ErrStateNotFound) {
				return errors.New("failed to get slot state")
			}
			state = &model.SlotState{}
		}

		state.Bet = bet

		if err := s.repo.UpsertState(txCtx, userID, state); err != nil {
			return errors.New("failed to update slot state")
		}

		return nil
	})
}
