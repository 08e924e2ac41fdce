package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/recovery-authority/internal/helpers"
	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/denmor86/recovery-authority/internal/services"
	"go.uber.org/zap"
)

// SubmitWithdrawalHandler — приём заявки на вывод средств
func SubmitWithdrawalHandler(s services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var request models.WithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		withdrawal, err := s.Submit(r.Context(), userID, request)
		if err != nil {
			var limitErr *services.AmountLimitError
			switch {
			case errors.Is(err, services.ErrFieldsRequired),
				errors.Is(err, services.ErrInvalidAmount),
				errors.Is(err, services.ErrInvalidWalletAddress),
				errors.Is(err, services.ErrUnknownNetwork):
				// сообщение называет конкретное нарушенное правило
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.As(err, &limitErr):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			default:
				logger.Error("Failed to submit withdrawal:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		amount, _ := withdrawal.Amount.Float64()
		response := models.WithdrawalResponse{
			ID:            withdrawal.ID,
			WalletAddress: withdrawal.WalletAddress,
			Network:       withdrawal.Network,
			Amount:        amount,
			Status:        withdrawal.Status,
			CreatedAt:     withdrawal.CreatedAt.Format(time.RFC3339),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetNotificationsHandler — получение последних заявок пользователя (история уведомлений)
func GetNotificationsHandler(s services.WithdrawalsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		withdrawals, err := s.GetNotifications(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get user withdrawals:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(withdrawals) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.WithdrawalResponse
		for _, withdrawal := range withdrawals {
			amount, _ := withdrawal.Amount.Float64()
			item := models.WithdrawalResponse{
				ID:            withdrawal.ID,
				WalletAddress: withdrawal.WalletAddress,
				Network:       withdrawal.Network,
				Amount:        amount,
				Status:        withdrawal.Status,
				AdminReason:   withdrawal.AdminReason,
				CreatedAt:     withdrawal.CreatedAt.Format(time.RFC3339),
			}
			response = append(response, item)
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logger.Error("Failed to encode JSON response: ", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
