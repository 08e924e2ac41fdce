package services

import (
	"context"
	"errors"

	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/denmor86/recovery-authority/internal/realtime"
	"github.com/denmor86/recovery-authority/internal/storage"
	"github.com/denmor86/recovery-authority/internal/validators"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrReasonRequired      = errors.New("please provide a reason")
	ErrUnknownBalanceField = errors.New("unknown balance field")
	ErrUnknownDirection    = errors.New("unknown adjustment direction")
	ErrUnknownReviewAction = errors.New("unknown review action")
)

type AdminService interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
	GetAccounts(ctx context.Context) ([]models.AccountData, error)
	AdjustBalance(ctx context.Context, adminID string, userID string, request models.AdjustBalanceRequest) (decimal.Decimal, error)
	SetBanned(ctx context.Context, adminID string, userID string, request models.BanRequest) error
	DeleteUser(ctx context.Context, adminID string, userID string, reason string) error
	GetWithdrawals(ctx context.Context) ([]models.WithdrawalReview, error)
	ReviewWithdrawal(ctx context.Context, adminID string, requestID string, request models.ReviewRequest) error
	GetStats(ctx context.Context) (*models.StatsResponse, error)
}

type Admin struct {
	Profiles    storage.ProfilesStorage
	Balances    storage.BalancesStorage
	Withdrawals storage.WithdrawalsStorage
	Hub         *realtime.Hub
}

// Создание сервиса
func NewAdmin(profiles storage.ProfilesStorage, balances storage.BalancesStorage, withdrawals storage.WithdrawalsStorage, hub *realtime.Hub) AdminService {
	return &Admin{Profiles: profiles, Balances: balances, Withdrawals: withdrawals, Hub: hub}
}

// IsAdmin - проверка наличия роли администратора у пользователя
func (s *Admin) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return s.Profiles.HasRole(ctx, userID, models.RoleAdmin)
}

// GetAccounts - все профили с балансами, новые первыми
func (s *Admin) GetAccounts(ctx context.Context) ([]models.AccountData, error) {
	accounts, err := s.Profiles.GetAccounts(ctx)
	if err != nil {
		logger.Error("Failed to get accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// AdjustBalance - корректировка поля баланса пользователя. Поле, направление
// и причина обязательны, сумма строго положительная. Изменение поля, запись
// в журнал операций и запись в журнал аудита выполняются одной транзакцией
// хранилища. Возвращает новое значение поля.
func (s *Admin) AdjustBalance(ctx context.Context, adminID string, userID string, request models.AdjustBalanceRequest) (decimal.Decimal, error) {
	if !models.KnownBalanceField(request.Field) {
		return decimal.Zero, ErrUnknownBalanceField
	}
	amount := decimal.NewFromFloat(request.Amount)
	if !validators.CheckAmount(amount) {
		return decimal.Zero, ErrInvalidAmount
	}
	if request.Reason == "" {
		return decimal.Zero, ErrReasonRequired
	}

	switch request.Direction {
	case models.AdjustDirectionAdd:
	case models.AdjustDirectionReduce:
		amount = amount.Neg()
	default:
		return decimal.Zero, ErrUnknownDirection
	}

	updated, err := s.Balances.AdjustBalance(ctx, models.BalanceAdjustment{
		AdminID: adminID,
		UserID:  userID,
		Field:   request.Field,
		Amount:  amount,
		Reason:  request.Reason,
	})
	if err != nil {
		logger.Error("Failed to adjust balance", zap.Error(err))
		return decimal.Zero, err
	}

	logger.Info("Balance adjusted", userID, request.Field, amount)
	s.Hub.Publish(realtime.ChangeEvent{
		Table:  realtime.TableBalances,
		Action: realtime.ActionUpdate,
		UserID: userID,
	})
	return updated, nil
}

// SetBanned - блокировка/разблокировка пользователя с записью в журнал аудита
func (s *Admin) SetBanned(ctx context.Context, adminID string, userID string, request models.BanRequest) error {
	actionType := models.ActionBanUser
	reason := request.Reason
	if request.Banned {
		if reason == "" {
			reason = "User banned"
		}
	} else {
		actionType = models.ActionUnbanUser
		if reason == "" {
			reason = "User unbanned"
		}
	}

	err := s.Profiles.SetBanned(ctx, request.Banned, models.AdminActionData{
		AdminID:      adminID,
		ActionType:   actionType,
		TargetUserID: userID,
		Reason:       reason,
	})
	if err != nil {
		logger.Error("Failed to set banned flag", zap.Error(err))
		return err
	}

	logger.Info("User banned flag updated", userID, request.Banned)
	return nil
}

// DeleteUser - удаление профиля пользователя. Связанные строки удаляет каскад
// в схеме БД, запись аудита остаётся (журнал без внешних ключей).
func (s *Admin) DeleteUser(ctx context.Context, adminID string, userID string, reason string) error {
	if reason == "" {
		reason = "User deleted"
	}
	err := s.Profiles.DeleteProfile(ctx, models.AdminActionData{
		AdminID:      adminID,
		ActionType:   models.ActionDeleteUser,
		TargetUserID: userID,
		Reason:       reason,
	})
	if err != nil {
		logger.Error("Failed to delete user", zap.Error(err))
		return err
	}

	logger.Info("User deleted", userID)
	s.Hub.Publish(realtime.ChangeEvent{
		Table:  realtime.TableProfiles,
		Action: realtime.ActionDelete,
		UserID: userID,
	})
	return nil
}

// GetWithdrawals - все заявки на вывод с данными владельцев, новые первыми
func (s *Admin) GetWithdrawals(ctx context.Context) ([]models.WithdrawalReview, error) {
	withdrawals, err := s.Withdrawals.GetWithdrawals(ctx)
	if err != nil {
		logger.Error("Failed to get withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// ReviewWithdrawal - решение администратора по заявке. Причина обязательна.
// Переход возможен только из статуса "pending", повторное решение по той же
// заявке завершается ErrNotPending.
func (s *Admin) ReviewWithdrawal(ctx context.Context, adminID string, requestID string, request models.ReviewRequest) error {
	if request.Reason == "" {
		return ErrReasonRequired
	}

	var status, resolution string
	switch request.Action {
	case models.ReviewActionApprove:
		status = models.WithdrawalStatusApproved
		resolution = "approved"
	case models.ReviewActionReject:
		status = models.WithdrawalStatusRejected
		resolution = "rejected"
	default:
		return ErrUnknownReviewAction
	}

	userID, err := s.Withdrawals.ReviewWithdrawal(ctx, requestID, status, models.AdminActionData{
		AdminID:    adminID,
		ActionType: models.ActionVerifyWithdrawal,
		Reason:     request.Reason,
		Metadata:   map[string]any{"withdrawal_id": requestID, "action": resolution},
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotPending) {
			logger.Warn("Withdrawal already reviewed", requestID)
			return err
		}
		logger.Error("Failed to review withdrawal", zap.Error(err))
		return err
	}

	logger.Info("Withdrawal reviewed", requestID, status)
	s.Hub.Publish(realtime.ChangeEvent{
		Table:  realtime.TableWithdrawals,
		Action: realtime.ActionUpdate,
		UserID: userID,
	})
	return nil
}

// GetStats - сводные показатели для административной панели
func (s *Admin) GetStats(ctx context.Context) (*models.StatsResponse, error) {
	stats, err := s.Profiles.GetStats(ctx)
	if err != nil {
		logger.Error("Failed to get stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
