package storage

import (
	"context"
	"errors"

	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/shopspring/decimal"
)

type ProfilesStorage interface {
	AddProfile(ctx context.Context, profile models.ProfileData, roles ...string) (string, error)
	GetProfile(ctx context.Context, email string) (*models.ProfileData, error)
	GetAccounts(ctx context.Context) ([]models.AccountData, error)
	SetBanned(ctx context.Context, banned bool, action models.AdminActionData) error
	DeleteProfile(ctx context.Context, action models.AdminActionData) error
	HasRole(ctx context.Context, userID string, role string) (bool, error)
	GetStats(ctx context.Context) (*models.StatsResponse, error)
}

type BalancesStorage interface {
	GetBalance(ctx context.Context, userID string) (*models.BalanceData, error)
	AdjustBalance(ctx context.Context, adjust models.BalanceAdjustment) (decimal.Decimal, error)
}

type WithdrawalsStorage interface {
	AddWithdrawal(ctx context.Context, withdrawal models.WithdrawalData) (*models.WithdrawalData, error)
	GetUserWithdrawals(ctx context.Context, userID string, limit int) ([]models.WithdrawalData, error)
	GetWithdrawals(ctx context.Context) ([]models.WithdrawalReview, error)
	ReviewWithdrawal(ctx context.Context, requestID string, status string, action models.AdminActionData) (string, error)
	ClaimWithdrawalsForPayout(ctx context.Context, count int) ([]models.WithdrawalData, error)
	SetWithdrawalStatus(ctx context.Context, requestID string, status string) (string, error)
}

type Storage struct {
	Profiles    ProfilesStorage
	Balances    BalancesStorage
	Withdrawals WithdrawalsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Profiles:    NewProfilesStorage(db),
		Balances:    NewBalancesStorage(db),
		Withdrawals: NewWithdrawalsStorage(db),
	}
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBalanceNotFound    = errors.New("balance not found")
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")
	ErrNotPending         = errors.New("withdrawal request is not pending")

	ErrAlreadyExists = errors.New("already exists")
)
