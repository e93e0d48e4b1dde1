package repository

import (
	"context"

	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/slot_stats_repo/model"
)

type SlotRepository interface {
	// GetState возвращает model.ErrStateNotFound, если состояния еще нет
	GetState(ctx context.Context, userID int) (*model.SlotState, error)
	UpsertState(ctx context.Context, userID int, state *model.SlotState) error
}

type SlotStatsRepository interface {
	State() statsModel.MachineStats
	UpdateState(bet, payout float64)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
}
