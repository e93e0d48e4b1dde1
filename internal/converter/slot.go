package converter

import (
	dto "slot_backend/internal/api/dto/slot"
	"slot_backend/internal/model"
	statsModel "slot_backend/internal/repository/slot_stats_repo/model"
)

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		Symbols:    res.Symbols,
		Multiplier: res.Multiplier,
		Win:        res.Win,
		Bet:        res.Bet,
		Balance:    res.Balance,
	}
}

func ToDataResponse(data model.SlotData) dto.DataResponse {
	return dto.DataResponse{
		Balance: data.Balance,
		Bet:     data.Bet,
		BetMin:  data.BetMin,
		BetMax:  data.BetMax,
		Win:     data.Win,
		Symbols: data.Symbols,
	}
}

func ToStatsResponse(stats statsModel.MachineStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalSpins:  stats.TotalSpins,
		TotalBet:    stats.TotalBet,
		TotalPayout: stats.TotalPayout,
		CurrentRTP:  stats.CurrentRTP,
		WindowRTP:   stats.WindowRTP,
	}
}
