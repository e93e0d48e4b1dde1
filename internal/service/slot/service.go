package slot

import (
	"slot_backend/internal/config"
	"slot_backend/internal/game"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg       config.SlotConfig
	repo      repository.SlotRepository
	userRepo  repository.UserRepository
	statsRepo repository.SlotStatsRepository
	txManager trm.Manager
	src       game.Source
}

// NewSlotService - создать сервис трехбарабанного автомата
func NewSlotService(
	cfg config.SlotConfig,
	repo repository.SlotRepository,
	userRepo repository.UserRepository,
	statsRepo repository.SlotStatsRepository,
	txManager trm.Manager,
) service.SlotService {
	return &serv{
		cfg:       cfg,
		repo:      repo,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		txManager: txManager,
		src:       game.NewSource(),
	}
}
