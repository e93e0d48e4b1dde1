package slot

import (
	"errors"
	"net/http"

	dto "slot_backend/internal/api/dto/slot"
	"slot_backend/internal/converter"
	"slot_backend/internal/game"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Spin(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusForGameError(err))
		return
	}

	response := converter.ToSpinResponse(*result)

	resp.WriteJSONResponse(w, http.StatusOK, response)
}

func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.serv.SetBet(r.Context(), payload.Bet); err != nil {
		http.Error(w, err.Error(), statusForGameError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.serv.Deposit(r.Context(), payload.Amount); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.CheckData(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

// statusForGameError - ошибки правил игры это ошибки клиента, а не сервера
func statusForGameError(err error) int {
	var invalidBet *game.InvalidBetError
	if errors.As(err, &invalidBet) || errors.Is(err, game.ErrLowBalance) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
