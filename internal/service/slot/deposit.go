package slot

import (
	"context"
	"errors"

	"slot_backend/internal/middleware"
)

// Deposit пополняет баланс пользователя
func (s *serv) Deposit(ctx context.Context, amount uint) error {
	if amount == 0 {
		return errors.New("deposit amount must be positive")
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return errors.New("user id not found in context")
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return errors.New("failed to get user balance")
		}

		if err := s.userRepo.UpdateBalance(txCtx, userID, balance+int(amount)); err != nil {
			return errors.New("failed to update user balance")
		}

		return nil
	})
}
