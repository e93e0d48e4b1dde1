package service

import (
	"context"

	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/slot_stats_repo/model"
)

type SlotService interface {
	Spin(ctx context.Context) (*model.SpinResult, error)
	SetBet(ctx context.Context, bet uint) error
	Deposit(ctx context.Context, amount uint) error
	CheckData(ctx context.Context) (*model.SlotData, error)
	Stats() statsModel.MachineStats
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
