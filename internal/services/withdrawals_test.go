package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/recovery-authority/internal/config"
	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/denmor86/recovery-authority/internal/realtime"
	"github.com/denmor86/recovery-authority/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestSubmitWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)
	mockBalances := mocks.NewMockBalancesStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawals(mockWithdrawals, mockBalances, realtime.NewHub())

	wallet := "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	balance := &models.BalanceData{UserID: "user-1", RefundReady: decimal.NewFromFloat(500.50)}

	testCases := []struct {
		Name          string
		Request       models.WithdrawalRequest
		SetupMocks    func()
		ExpectedError string
	}{
		{
			Name:    "Success. Withdrawal accepted #1",
			Request: models.WithdrawalRequest{WalletAddress: wallet, Network: "ethereum", Amount: "100.25"},
			SetupMocks: func() {
				mockBalances.EXPECT().GetBalance(gomock.Any(), "user-1").Return(balance, nil)
				mockWithdrawals.EXPECT().AddWithdrawal(gomock.Any(), gomock.Any()).Return(
					&models.WithdrawalData{ID: "req-1", UserID: "user-1", Status: models.WithdrawalStatusPending}, nil)
			},
			ExpectedError: "",
		},
		{
			Name:          "Error. Empty wallet address #2",
			Request:       models.WithdrawalRequest{WalletAddress: "", Network: "ethereum", Amount: "100"},
			SetupMocks:    func() {},
			ExpectedError: "all fields are required",
		},
		{
			Name:          "Error. Empty network #3",
			Request:       models.WithdrawalRequest{WalletAddress: wallet, Network: "", Amount: "100"},
			SetupMocks:    func() {},
			ExpectedError: "all fields are required",
		},
		{
			Name:          "Error. Amount is not a number #4",
			Request:       models.WithdrawalRequest{WalletAddress: wallet, Network: "ethereum", Amount: "abc"},
			SetupMocks:    func() {},
			ExpectedError: "please enter a valid amount",
		},
		{
			Name:          "Error. Zero amount #5",
			Request:       models.WithdrawalRequest{WalletAddress: wallet, Network: "ethereum", Amount: "0"},
			SetupMocks:    func() {},
			ExpectedError: "please enter a valid amount",
		},
		{
			Name:          "Error. Negative amount #6",
			Request:       models.WithdrawalRequest{WalletAddress: wallet, Network: "ethereum", Amount: "-10"},
			SetupMocks:    func() {},
			ExpectedError: "please enter a valid amount",
		},
		{
			Name:    "Error. Amount above available balance #7",
			Request: models.WithdrawalRequest{WalletAddress: wallet, Network: "ethereum", Amount: "500.51"},
			SetupMocks: func() {
				mockBalances.EXPECT().GetBalance(gomock.Any(), "user-1").Return(balance, nil)
			},
			ExpectedError: "amount cannot exceed available balance of $500.50",
		},
		{
			Name:    "Success. Amount equal to available balance #8",
			Request: models.WithdrawalRequest{WalletAddress: wallet, Network: "ethereum", Amount: "500.50"},
			SetupMocks: func() {
				mockBalances.EXPECT().GetBalance(gomock.Any(), "user-1").Return(balance, nil)
				mockWithdrawals.EXPECT().AddWithdrawal(gomock.Any(), gomock.Any()).Return(
					&models.WithdrawalData{ID: "req-2", UserID: "user-1", Status: models.WithdrawalStatusPending}, nil)
			},
			ExpectedError: "",
		},
		{
			Name:    "Error. Invalid wallet address #9",
			Request: models.WithdrawalRequest{WalletAddress: "0x742d35Cc6634C0532925a3b844Bc454e4438f44", Network: "ethereum", Amount: "100"},
			SetupMocks: func() {
				mockBalances.EXPECT().GetBalance(gomock.Any(), "user-1").Return(balance, nil)
			},
			ExpectedError: "invalid wallet address format",
		},
		{
			Name:    "Error. Unknown network #10",
			Request: models.WithdrawalRequest{WalletAddress: wallet, Network: "solana", Amount: "100"},
			SetupMocks: func() {
				mockBalances.EXPECT().GetBalance(gomock.Any(), "user-1").Return(balance, nil)
			},
			ExpectedError: "unknown network",
		},
		{
			Name:    "Error. Storage failure #11",
			Request: models.WithdrawalRequest{WalletAddress: wallet, Network: "bsc", Amount: "1"},
			SetupMocks: func() {
				mockBalances.EXPECT().GetBalance(gomock.Any(), "user-1").Return(balance, nil)
				mockWithdrawals.EXPECT().AddWithdrawal(gomock.Any(), gomock.Any()).Return(nil, errors.New("failed to add withdrawal"))
			},
			ExpectedError: "failed to add withdrawal",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			withdrawal, err := withdrawals.Submit(ctx, "user-1", tc.Request)

			if err != nil && tc.ExpectedError == "" {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != "" {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError {
				t.Errorf("Expected error '%s', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == "" && withdrawal == nil {
				t.Errorf("Expected withdrawal, got nil")
			}
		})
	}
}

func TestSubmitWithdrawalLimitError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)
	mockBalances := mocks.NewMockBalancesStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawals(mockWithdrawals, mockBalances, realtime.NewHub())

	t.Run("Limit error carries current balance", func(t *testing.T) {
		mockBalances.EXPECT().GetBalance(gomock.Any(), "user-1").Return(
			&models.BalanceData{UserID: "user-1", RefundReady: decimal.NewFromInt(42)}, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		_, err := withdrawals.Submit(ctx, "user-1", models.WithdrawalRequest{
			WalletAddress: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			Network:       "polygon",
			Amount:        "100",
		})

		var limitErr *AmountLimitError
		if !errors.As(err, &limitErr) {
			t.Fatalf("Expected AmountLimitError, got: '%v'", err)
		}
		if !limitErr.Limit.Equal(decimal.NewFromInt(42)) {
			t.Errorf("Expected limit 42, got: '%s'", limitErr.Limit)
		}
	})
}

func TestGetNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)
	mockBalances := mocks.NewMockBalancesStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	withdrawals := NewWithdrawals(mockWithdrawals, mockBalances, realtime.NewHub())

	latest := []models.WithdrawalData{
		{ID: "req-2", UserID: "user-1", Status: models.WithdrawalStatusApproved},
		{ID: "req-1", UserID: "user-1", Status: models.WithdrawalStatusPending},
	}

	testCases := []struct {
		Name          string
		UserID        string
		SetupMocks    func()
		ExpectedError error
		ExpectedData  []models.WithdrawalData
	}{
		{
			Name:   "Success. Latest withdrawals #1",
			UserID: "user-1",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetUserWithdrawals(gomock.Any(), "user-1", NotificationsLimit).Return(latest, nil)
			},
			ExpectedError: nil,
			ExpectedData:  latest,
		},
		{
			Name:   "Success. No withdrawals #2",
			UserID: "user-2",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetUserWithdrawals(gomock.Any(), "user-2", NotificationsLimit).Return(nil, nil)
			},
			ExpectedError: nil,
			ExpectedData:  nil,
		},
		{
			Name:   "Error. Storage failure #3",
			UserID: "user-1",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().GetUserWithdrawals(gomock.Any(), "user-1", NotificationsLimit).Return(nil, errors.New("failed to get withdrawals"))
			},
			ExpectedError: errors.New("failed to get withdrawals"),
			ExpectedData:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			data, err := withdrawals.GetNotifications(ctx, tc.UserID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedData, data)
			if len(diff) != 0 {
				t.Errorf("expected withdrawals mismatch:\n %s", diff)
			}
		})
	}
}
