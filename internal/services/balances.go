package services

import (
	"context"

	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/denmor86/recovery-authority/internal/storage"
	"go.uber.org/zap"
)

type BalancesService interface {
	GetBalance(ctx context.Context, userID string) (*models.BalanceData, error)
}

type Balances struct {
	Storage storage.BalancesStorage
}

// Создание сервиса
func NewBalances(storage storage.BalancesStorage) BalancesService {
	return &Balances{Storage: storage}
}

// GetBalance возвращает баланс пользователя: три независимых поля одной строкой
func (s *Balances) GetBalance(ctx context.Context, userID string) (*models.BalanceData, error) {
	balance, err := s.Storage.GetBalance(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}
