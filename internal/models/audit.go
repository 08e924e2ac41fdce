package models

import "github.com/shopspring/decimal"

// Типы действий администратора для журнала аудита
const (
	ActionAddBalance       = "add_balance"
	ActionReduceBalance    = "reduce_balance"
	ActionBanUser          = "ban_user"
	ActionUnbanUser        = "unban_user"
	ActionDeleteUser       = "delete_user"
	ActionVerifyWithdrawal = "verify_withdrawal"
)

// Типы записей в журнале операций
const (
	TransactionTypeAdjustment = "adjustment"
)

// TransactionData - запись журнала операций по средствам пользователя.
// Сумма хранится со знаком, журнал только пополняется.
type TransactionData struct {
	UserID string
	Type   string
	Amount decimal.Decimal
	Memo   string
}

// AdminActionData - запись журнала действий администратора, журнал только пополняется
type AdminActionData struct {
	AdminID      string
	ActionType   string
	TargetUserID string
	Reason       string
	DeltaAmount  *decimal.Decimal
	Metadata     map[string]any
}

// BanRequest - модель запроса на блокировку/разблокировку пользователя
type BanRequest struct {
	Banned bool   `json:"banned"`
	Reason string `json:"reason,omitempty"`
}

// StatsResponse - сводные показатели для административной панели
type StatsResponse struct {
	TotalUsers         int             `json:"total_users"`
	PendingWithdrawals int             `json:"pending_withdrawals"`
	TotalTraced        decimal.Decimal `json:"total_traced"`
}
