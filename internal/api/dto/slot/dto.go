package slot

type SpinResponse struct {
	Symbols    []string `json:"symbols"`    // Имена символов на барабанах
	Multiplier uint     `json:"multiplier"` // Множитель выплаты
	Win        uint     `json:"win"`        // Выигрыш (множитель * ставка)
	Bet        uint     `json:"bet"`        // Размер ставки
	Balance    uint     `json:"balance"`    // Баланс после
}

type BetRequest struct {
	Bet uint `json:"bet"` // Новый размер ставки
}

type DepositRequest struct {
	Amount uint `json:"amount"` // Сумма депозита
}

type DataResponse struct {
	Balance uint     `json:"balance"`           // Баланс пользователя
	Bet     uint     `json:"bet"`               // Текущая ставка
	BetMin  uint     `json:"bet_min"`           // Минимальная ставка
	BetMax  uint     `json:"bet_max"`           // Максимальная ставка
	Win     uint     `json:"win"`               // Последний выигрыш
	Symbols []string `json:"symbols,omitempty"` // Символы последнего спина
}

type StatsResponse struct {
	TotalSpins  int     `json:"total_spins"`  // Всего спинов
	TotalBet    float64 `json:"total_bet"`    // Сумма ставок
	TotalPayout float64 `json:"total_payout"` // Сумма выплат
	CurrentRTP  float64 `json:"current_rtp"`  // RTP за все время
	WindowRTP   float64 `json:"window_rtp"`   // RTP в окне последних спинов
}
