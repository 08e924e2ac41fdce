package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/denmor86/recovery-authority/internal/realtime"
	"github.com/denmor86/recovery-authority/internal/storage"
	"github.com/denmor86/recovery-authority/internal/validators"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount        = errors.New("please enter a valid amount")
	ErrInvalidWalletAddress = errors.New("invalid wallet address format")
	ErrUnknownNetwork       = errors.New("unknown network")
)

// AmountLimitError - сумма заявки превышает доступный остаток
type AmountLimitError struct {
	Limit decimal.Decimal
}

func (e *AmountLimitError) Error() string {
	return fmt.Sprintf("amount cannot exceed available balance of $%s", e.Limit.StringFixed(2))
}

// Окно выдачи последних заявок пользователя
const NotificationsLimit = 10

type WithdrawalsService interface {
	Submit(ctx context.Context, userID string, request models.WithdrawalRequest) (*models.WithdrawalData, error)
	GetNotifications(ctx context.Context, userID string) ([]models.WithdrawalData, error)
}

type Withdrawals struct {
	Withdrawals storage.WithdrawalsStorage
	Balances    storage.BalancesStorage
	Hub         *realtime.Hub
}

// Создание сервиса
func NewWithdrawals(withdrawals storage.WithdrawalsStorage, balances storage.BalancesStorage, hub *realtime.Hub) WithdrawalsService {
	return &Withdrawals{Withdrawals: withdrawals, Balances: balances, Hub: hub}
}

// Submit - приём заявки на вывод средств. Проверки идут строго по порядку:
// заполненность полей, корректность суммы, потолок по доступному остатку,
// формат адреса кошелька. До прохождения всех проверок записи в хранилище нет.
func (s *Withdrawals) Submit(ctx context.Context, userID string, request models.WithdrawalRequest) (*models.WithdrawalData, error) {
	if request.WalletAddress == "" || request.Network == "" || request.Amount == "" {
		return nil, ErrFieldsRequired
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil || !validators.CheckAmount(amount) {
		return nil, ErrInvalidAmount
	}

	// потолок заявки - текущее значение refund_ready
	balance, err := s.Balances.GetBalance(ctx, userID)
	if err != nil {
		logger.Error("Failed to get balance for withdrawal", zap.Error(err))
		return nil, err
	}
	if !validators.CheckAmountLimit(amount, balance.RefundReady) {
		return nil, &AmountLimitError{Limit: balance.RefundReady}
	}

	// единый шестнадцатеричный шаблон применяется ко всем сетям
	if !validators.CheckWalletAddress(request.WalletAddress) {
		return nil, ErrInvalidWalletAddress
	}

	if !models.KnownNetwork(request.Network) {
		return nil, ErrUnknownNetwork
	}

	withdrawal, err := s.Withdrawals.AddWithdrawal(ctx, models.WithdrawalData{
		UserID:        userID,
		WalletAddress: request.WalletAddress,
		Network:       request.Network,
		Amount:        amount,
	})
	if err != nil {
		logger.Error("Failed to add withdrawal", zap.Error(err))
		return nil, err
	}

	s.Hub.Publish(realtime.ChangeEvent{
		Table:  realtime.TableWithdrawals,
		Action: realtime.ActionInsert,
		UserID: userID,
	})
	return withdrawal, nil
}

// GetNotifications возвращает десять последних заявок пользователя, новые первыми
func (s *Withdrawals) GetNotifications(ctx context.Context, userID string) ([]models.WithdrawalData, error) {
	withdrawals, err := s.Withdrawals.GetUserWithdrawals(ctx, userID, NotificationsLimit)
	if err != nil {
		logger.Error("Failed to get withdrawals:", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
