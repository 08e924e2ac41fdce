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
	"github.com/denmor86/recovery-authority/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetAccountsHandler — список всех профилей с балансами
func GetAccountsHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := a.GetAccounts(r.Context())
		if err != nil {
			logger.Error("Failed to get accounts:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := make([]models.AccountResponse, 0, len(accounts))
		for _, account := range accounts {
			response = append(response, models.AccountResponse{
				UserID:      account.Profile.UserID,
				Email:       account.Profile.Email,
				FullName:    account.Profile.FullName,
				Banned:      account.Profile.Banned,
				CreatedAt:   account.Profile.CreatedAt.Format(time.RFC3339),
				TotalTraced: account.Balance.TotalTraced,
				RefundReady: account.Balance.RefundReady,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// AdjustBalanceHandler — корректировка поля баланса пользователя
func AdjustBalanceHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID, err := helpers.GetUserID(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		userID := chi.URLParam(r, "userID")

		var request models.AdjustBalanceRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		updated, err := a.AdjustBalance(r.Context(), adminID, userID, request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownBalanceField),
				errors.Is(err, services.ErrInvalidAmount),
				errors.Is(err, services.ErrUnknownDirection),
				errors.Is(err, services.ErrReasonRequired):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.Is(err, storage.ErrBalanceNotFound):
				http.Error(w, "Balance not found", http.StatusNotFound)
			default:
				logger.Error("Failed to adjust balance:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(map[string]any{"field": request.Field, "value": updated}); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// BanUserHandler — блокировка/разблокировка пользователя
func BanUserHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID, err := helpers.GetUserID(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		userID := chi.URLParam(r, "userID")

		var request models.BanRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := a.SetBanned(r.Context(), adminID, userID, request); err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				http.Error(w, "User not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to update banned flag:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// DeleteUserHandler — удаление пользователя со всеми связанными данными
func DeleteUserHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID, err := helpers.GetUserID(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		userID := chi.URLParam(r, "userID")
		reason := r.URL.Query().Get("reason")

		if err := a.DeleteUser(r.Context(), adminID, userID, reason); err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				http.Error(w, "User not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to delete user:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// GetWithdrawalsReviewHandler — список всех заявок на вывод с данными владельцев
func GetWithdrawalsReviewHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		withdrawals, err := a.GetWithdrawals(r.Context())
		if err != nil {
			logger.Error("Failed to get withdrawals:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := make([]models.WithdrawalReviewResponse, 0, len(withdrawals))
		for _, review := range withdrawals {
			amount, _ := review.Withdrawal.Amount.Float64()
			response = append(response, models.WithdrawalReviewResponse{
				ID:            review.Withdrawal.ID,
				UserID:        review.Withdrawal.UserID,
				Email:         review.Email,
				FullName:      review.FullName,
				WalletAddress: review.Withdrawal.WalletAddress,
				Network:       review.Withdrawal.Network,
				Amount:        amount,
				Status:        review.Withdrawal.Status,
				AdminReason:   review.Withdrawal.AdminReason,
				CreatedAt:     review.Withdrawal.CreatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// ReviewWithdrawalHandler — решение администратора по заявке
func ReviewWithdrawalHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID, err := helpers.GetUserID(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		requestID := chi.URLParam(r, "requestID")

		var request models.ReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := a.ReviewWithdrawal(r.Context(), adminID, requestID, request); err != nil {
			switch {
			case errors.Is(err, services.ErrReasonRequired),
				errors.Is(err, services.ErrUnknownReviewAction):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.Is(err, storage.ErrWithdrawalNotFound):
				http.Error(w, "Withdrawal request not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrNotPending):
				// заявка уже рассмотрена, повторное решение не проходит
				http.Error(w, "Withdrawal request is not pending", http.StatusConflict)
			default:
				logger.Error("Failed to review withdrawal:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// GetStatsHandler — сводные показатели для административной панели
func GetStatsHandler(a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := a.GetStats(r.Context())
		if err != nil {
			logger.Error("Failed to get stats:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(w).Encode(stats); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
