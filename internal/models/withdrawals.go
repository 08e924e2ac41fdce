package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заявок на вывод средств
const (
	WithdrawalStatusPending    = "pending"
	WithdrawalStatusApproved   = "approved"
	WithdrawalStatusRejected   = "rejected"
	WithdrawalStatusProcessing = "processing"
	WithdrawalStatusCompleted  = "completed"
)

// Поддерживаемые сети для вывода средств
const (
	NetworkEthereum = "ethereum"
	NetworkBSC      = "bsc"
	NetworkPolygon  = "polygon"
	NetworkArbitrum = "arbitrum"
	NetworkOptimism = "optimism"
)

// KnownNetwork проверяет, что сеть входит в фиксированный список
func KnownNetwork(network string) bool {
	switch network {
	case NetworkEthereum, NetworkBSC, NetworkPolygon, NetworkArbitrum, NetworkOptimism:
		return true
	}
	return false
}

// WithdrawalRequest - модель заявки на вывод средств, приходит извне
type WithdrawalRequest struct {
	WalletAddress string `json:"wallet_address"`
	Network       string `json:"network"`
	Amount        string `json:"amount"`
}

// WithdrawalData - модель заявки на вывод средств из хранилища
type WithdrawalData struct {
	ID            string
	UserID        string
	WalletAddress string
	Network       string
	Amount        decimal.Decimal
	Status        string
	AdminID       string
	AdminReason   string
	RetryCount    int
	CreatedAt     time.Time
}

// WithdrawalResponse — структура ответа о заявке на вывод средств
type WithdrawalResponse struct {
	ID            string  `json:"id"`
	WalletAddress string  `json:"wallet_address"`
	Network       string  `json:"network"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	AdminReason   string  `json:"admin_reason,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// ReviewRequest - модель решения администратора по заявке
type ReviewRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// Решения администратора по заявке
const (
	ReviewActionApprove = "approve"
	ReviewActionReject  = "reject"
)

// WithdrawalReview - модель заявки вместе с данными владельца (для админского списка)
type WithdrawalReview struct {
	Withdrawal WithdrawalData
	Email      string
	FullName   string
}

// WithdrawalReviewResponse - модель заявки с данными владельца для выдачи
type WithdrawalReviewResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Email         string  `json:"email"`
	FullName      string  `json:"full_name,omitempty"`
	WalletAddress string  `json:"wallet_address"`
	Network       string  `json:"network"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	AdminReason   string  `json:"admin_reason,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
