package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/recovery-authority/internal/helpers"
	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/denmor86/recovery-authority/internal/services"
	"go.uber.org/zap"
)

// GetUserBalanceHandler — получение баланса пользователя
func GetUserBalanceHandler(b services.BalancesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		balance, err := b.GetBalance(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get user balance:", zap.Error(err))
			http.Error(w, "Failed to load balance information", http.StatusInternalServerError)
			return
		}

		response := models.BalanceResponse{
			TotalTraced: balance.TotalTraced,
			AmountFreed: balance.AmountFreed,
			RefundReady: balance.RefundReady,
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
