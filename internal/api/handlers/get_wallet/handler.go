package get_wallet

import (
	"net/http"

	"github.com/Eldarfox/easy-parking-maps/internal/api/handlers"
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

// WalletResponse HTTP response model
type WalletResponse struct {
	Balance int64 `json:"balance"`
}

// Handle GET /api/v1/wallet
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	balance, err := h.wallet.Balance(r.Context())
	if err != nil {
		h.logger.Error("GET /wallet - Failed to load balance: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, WalletResponse{Balance: balance})
}
