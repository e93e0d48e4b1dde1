package slot

import (
	"context"
	"errors"
	"testing"

	"slot_backend/internal/game"
	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
	"slot_backend/internal/repository/slot_stats_repo"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// Менеджер транзакций, просто выполняющий функцию
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	balance int
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	return 0, errors.New("not implemented")
}

func (r *fakeUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeUserRepo) GetBalance(ctx context.Context, id int) (int, error) {
	return r.balance, nil
}

func (r *fakeUserRepo) UpdateBalance(ctx context.Context, id int, amount int) error {
	r.balance = amount
	return nil
}

type fakeSlotRepo struct {
	state *model.SlotState
}

func (r *fakeSlotRepo) GetState(ctx context.Context, userID int) (*model.SlotState, error) {
	if r.state == nil {
		return nil, model.ErrStateNotFound
	}
	cp := *r.state
	return &cp, nil
}

func (r *fakeSlotRepo) UpsertState(ctx context.Context, userID int, state *model.SlotState) error {
	cp := *state
	r.state = &cp
	return nil
}

type fakeSlotConfig struct {
	startCredits, betDefault, betMin, betMax uint
}

func (c fakeSlotConfig) StartCredits() uint { return c.startCredits }
func (c fakeSlotConfig) BetDefault() uint   { return c.betDefault }
func (c fakeSlotConfig) BetMin() uint       { return c.betMin }
func (c fakeSlotConfig) BetMax() uint       { return c.betMax }
func (c fakeSlotConfig) BetLevels() []uint  { return []uint{1, 2, 3, 5, 10} }

// Скриптованный источник символов
type scriptSource struct {
	numbers []uint32
	pos     int
}

func (s *scriptSource) Draw() uint32 {
	n := s.numbers[s.pos%len(s.numbers)]
	s.pos++
	return n
}

func newTestService(balance int, numbers []uint32) (*serv, *fakeUserRepo, *fakeSlotRepo) {
	userRepo := &fakeUserRepo{balance: balance}
	slotRepo := &fakeSlotRepo{}

	s := NewSlotService(
		fakeSlotConfig{startCredits: 1000, betDefault: 2, betMin: 1, betMax: 10},
		slotRepo,
		userRepo,
		slot_stats_repo.NewSlotStatsRepository(),
		fakeTxManager{},
	).(*serv)

	if numbers != nil {
		s.src = &scriptSource{numbers: numbers}
	}

	return s, userRepo, slotRepo
}

func userCtx() context.Context {
	return middleware.WithUserID(context.Background(), 1)
}

func TestSpin(t *testing.T) {
	// Три Seven - множитель 300
	s, userRepo, slotRepo := newTestService(100, []uint32{118, 125, 120})

	res, err := s.Spin(userCtx())
	if err != nil {
		t.Fatalf("Spin unexpected error: %v", err)
	}

	// Состояния не было, ставка по умолчанию из конфигурации
	if res.Bet != 2 {
		t.Errorf("res.Bet = %d, want 2", res.Bet)
	}
	if res.Multiplier != 300 {
		t.Errorf("res.Multiplier = %d, want 300", res.Multiplier)
	}
	if res.Win != 600 {
		t.Errorf("res.Win = %d, want 600", res.Win)
	}
	if res.Balance != 100-2+600 {
		t.Errorf("res.Balance = %d, want %d", res.Balance, 100-2+600)
	}

	if userRepo.balance != 100-2+600 {
		t.Errorf("stored balance = %d, want %d", userRepo.balance, 100-2+600)
	}
	if slotRepo.state == nil || slotRepo.state.Win != 600 {
		t.Errorf("stored state = %+v, want win 600", slotRepo.state)
	}

	want := []string{"Seven", "Seven", "Seven"}
	for i := range want {
		if res.Symbols[i] != want[i] {
			t.Errorf("res.Symbols[%d] = %q, want %q", i, res.Symbols[i], want[i])
		}
	}

	stats := s.Stats()
	if stats.TotalSpins != 1 || stats.TotalBet != 2 || stats.TotalPayout != 600 {
		t.Errorf("stats = %+v, want 1 spin, bet 2, payout 600", stats)
	}
}

func TestSpinLowBalance(t *testing.T) {
	s, userRepo, slotRepo := newTestService(1, nil)

	_, err := s.Spin(userCtx())
	if !errors.Is(err, game.ErrLowBalance) {
		t.Fatalf("Spin error = %v, want game.ErrLowBalance", err)
	}

	// Баланс и состояние не тронуты
	if userRepo.balance != 1 {
		t.Errorf("balance = %d, want 1", userRepo.balance)
	}
	if slotRepo.state != nil {
		t.Errorf("state = %+v, want nil", slotRepo.state)
	}
	if stats := s.Stats(); stats.TotalSpins != 0 {
		t.Errorf("stats.TotalSpins = %d, want 0", stats.TotalSpins)
	}
}

func TestSpinNoUserID(t *testing.T) {
	s, _, _ := newTestService(100, nil)

	if _, err := s.Spin(context.Background()); err == nil {
		t.Error("Spin without user id: expected error, got nil")
	}
}

func TestSetBet(t *testing.T) {
	s, _, slotRepo := newTestService(100, nil)

	if err := s.SetBet(userCtx(), 5); err != nil {
		t.Fatalf("SetBet(5) unexpected error: %v", err)
	}
	if slotRepo.state == nil || slotRepo.state.Bet != 5 {
		t.Errorf("stored state = %+v, want bet 5", slotRepo.state)
	}

	// Ставка вне границ не сохраняется
	var invalidBet *game.InvalidBetError
	if err := s.SetBet(userCtx(), 11); !errors.As(err, &invalidBet) {
		t.Fatalf("SetBet(11) error = %v, want InvalidBetError", err)
	}
	if slotRepo.state.Bet != 5 {
		t.Errorf("stored bet = %d, want 5", slotRepo.state.Bet)
	}
}

func TestSetBetUsedOnNextSpin(t *testing.T) {
	// Blank, Blank, Blank - без выигрыша
	s, userRepo, _ := newTestService(100, []uint32{0, 0, 0})

	if err := s.SetBet(userCtx(), 10); err != nil {
		t.Fatal(err)
	}

	res, err := s.Spin(userCtx())
	if err != nil {
		t.Fatal(err)
	}

	if res.Bet != 10 {
		t.Errorf("res.Bet = %d, want 10", res.Bet)
	}
	if userRepo.balance != 90 {
		t.Errorf("balance = %d, want 90", userRepo.balance)
	}
}

func TestDeposit(t *testing.T) {
	s, userRepo, _ := newTestService(100, nil)

	if err := s.Deposit(userCtx(), 50); err != nil {
		t.Fatalf("Deposit unexpected error: %v", err)
	}
	if userRepo.balance != 150 {
		t.Errorf("balance = %d, want 150", userRepo.balance)
	}

	if err := s.Deposit(userCtx(), 0); err == nil {
		t.Error("Deposit(0): expected error, got nil")
	}
}

func TestCheckData(t *testing.T) {
	s, _, slotRepo := newTestService(100, nil)

	// Без сохраненного состояния - значения по умолчанию
	data, err := s.CheckData(userCtx())
	if err != nil {
		t.Fatalf("CheckData unexpected error: %v", err)
	}
	if data.Balance != 100 || data.Bet != 2 || data.Win != 0 {
		t.Errorf("data = %+v, want balance 100, bet 2, win 0", data)
	}
	if data.BetMin != 1 || data.BetMax != 10 {
		t.Errorf("bet bounds = [%d, %d], want [1, 10]", data.BetMin, data.BetMax)
	}

	slotRepo.state = &model.SlotState{Bet: 3, Win: 36, Symbols: []string{"Cherry", "Cherry", "Cherry"}}

	data, err = s.CheckData(userCtx())
	if err != nil {
		t.Fatal(err)
	}
	if data.Bet != 3 || data.Win != 36 || len(data.Symbols) != 3 {
		t.Errorf("data = %+v, want bet 3, win 36, 3 symbols", data)
	}
}
