package model

import "errors"

// ErrStateNotFound - у пользователя еще нет сохраненного состояния автомата
var ErrStateNotFound = errors.New("slot state not found")

// SpinResult - итог одного спина для клиента
type SpinResult struct {
	Symbols    []string
	Multiplier uint
	Win        uint
	Bet        uint
	Balance    uint
}

// SlotState - сохраняемое состояние автомата пользователя
type SlotState struct {
	Bet     uint
	Win     uint
	Symbols []string
}

// SlotData - полное состояние для клиента (и для хука сериализации)
type SlotData struct {
	Balance uint
	Bet     uint
	BetMin  uint
	BetMax  uint
	Win     uint
	Symbols []string
}
