package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/denmor86/recovery-authority/internal/client"
	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/denmor86/recovery-authority/internal/realtime"
	"github.com/denmor86/recovery-authority/internal/storage"
	"go.uber.org/zap"
)

type PayoutService interface {
	ClaimPayouts(ctx context.Context, count int) ([]models.WithdrawalData, error)
	ProcessPayout(ctx context.Context, withdrawal models.WithdrawalData) error
}

type Payout struct {
	Withdrawals storage.WithdrawalsStorage
	Gateway     client.PayoutGateway
	Limiter     *client.RateLimiter
	Hub         *realtime.Hub
}

// Создание сервиса
func NewPayout(baseURL string, withdrawals storage.WithdrawalsStorage, hub *realtime.Hub) PayoutService {
	return &Payout{
		Withdrawals: withdrawals,
		Gateway:     client.NewClient(baseURL, &http.Client{}),
		Limiter:     client.NewRateLimiter(),
		Hub:         hub,
	}
}

// ClaimPayouts - захват пачки одобренных заявок под выплату
func (s *Payout) ClaimPayouts(ctx context.Context, count int) ([]models.WithdrawalData, error) {
	withdrawals, err := s.Withdrawals.ClaimWithdrawalsForPayout(ctx, count)
	if err != nil {
		return nil, err
	}
	for _, withdrawal := range withdrawals {
		s.Hub.Publish(realtime.ChangeEvent{
			Table:  realtime.TableWithdrawals,
			Action: realtime.ActionUpdate,
			UserID: withdrawal.UserID,
		})
	}
	return withdrawals, nil
}

// ProcessPayout - отправка захваченной заявки платёжному шлюзу.
// Успех переводит заявку в "completed", неуспех возвращает её в "approved",
// где она будет захвачена повторно (число попыток ограничено хранилищем).
func (s *Payout) ProcessPayout(ctx context.Context, withdrawal models.WithdrawalData) error {
	if err := s.Limiter.Wait(ctx); err != nil {
		return err
	}

	amount, _ := withdrawal.Amount.Float64()
	_, err := s.Gateway.SendPayout(ctx, client.PayoutRequest{
		RequestID:     withdrawal.ID,
		WalletAddress: withdrawal.WalletAddress,
		Network:       withdrawal.Network,
		Amount:        amount,
	})
	if err != nil {
		// проверка большого количеста запросов
		var rateLimitErr *client.RateLimitError
		if errors.As(err, &rateLimitErr) {
			logger.Warn("Too many requests to payout gateway:", withdrawal.ID)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
		}
		// возвращаем заявку под повторный захват
		if _, revertErr := s.Withdrawals.SetWithdrawalStatus(ctx, withdrawal.ID, models.WithdrawalStatusApproved); revertErr != nil {
			logger.Error("Failed to revert withdrawal status", zap.Error(revertErr))
		}
		return err
	}

	userID, err := s.Withdrawals.SetWithdrawalStatus(ctx, withdrawal.ID, models.WithdrawalStatusCompleted)
	if err != nil {
		logger.Error("Failed to complete withdrawal", zap.Error(err))
		return err
	}

	logger.Info("Payout completed", withdrawal.ID)
	s.Hub.Publish(realtime.ChangeEvent{
		Table:  realtime.TableWithdrawals,
		Action: realtime.ActionUpdate,
		UserID: userID,
	})
	return nil
}
