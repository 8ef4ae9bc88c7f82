package topup_wallet

import (
	"errors"
	"net/http"

	"github.com/Eldarfox/easy-parking-maps/internal/api/handlers"
	walletService "github.com/Eldarfox/easy-parking-maps/internal/service/wallet"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAmount      = "сумма пополнения должна быть положительной"
)

type Handler struct {
	wallet WalletService
	logger Logger
}

func NewHandler(wallet WalletService, logger Logger) *Handler {
	return &Handler{
		wallet: wallet,
		logger: logger,
	}
}

// TopUpRequest HTTP request model
type TopUpRequest struct {
	Amount int64 `json:"amount"`
}

// WalletResponse HTTP response model
type WalletResponse struct {
	Balance int64 `json:"balance"`
}

// Handle POST /api/v1/wallet/topup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req TopUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wallet/topup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	balance, err := h.wallet.TopUp(r.Context(), req.Amount)
	if err != nil {
		if errors.Is(err, walletService.ErrInvalidAmount) {
			h.logger.Warn("POST /wallet/topup - Invalid amount %d", req.Amount)
			handlers.RespondBadRequest(w, msgInvalidAmount)
			return
		}
		h.logger.Error("POST /wallet/topup - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wallet/topup - Balance topped up by %d", req.Amount)
	handlers.RespondJSON(w, http.StatusOK, WalletResponse{Balance: balance})
}
