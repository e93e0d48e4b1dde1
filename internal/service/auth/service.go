package auth

import (
	"slot_backend/internal/config"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig

	// Стартовый баланс нового пользователя
	startCredits uint
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	startCredits uint,
) service.AuthService {
	return &serv{
		txManager:    txManager,
		userRepo:     userRepo,
		authRepo:     authRepo,
		jwtConfig:    jwtConfig,
		startCredits: startCredits,
	}
}

// generateSessionID - случайный идентификатор сессии
func generateSessionID() string {
	return uuid.NewString()
}
