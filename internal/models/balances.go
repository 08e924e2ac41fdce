package models

import "github.com/shopspring/decimal"

// Поля баланса пользователя, доступные для корректировки администратором
const (
	BalanceFieldTotalTraced = "total_traced"
	BalanceFieldAmountFreed = "amount_freed_pending"
	BalanceFieldRefundReady = "refund_ready"
)

// Направления корректировки баланса
const (
	AdjustDirectionAdd    = "add"
	AdjustDirectionReduce = "reduce"
)

// BalanceData - модель баланса пользователя из хранилища
type BalanceData struct {
	UserID      string
	TotalTraced decimal.Decimal
	AmountFreed decimal.Decimal
	RefundReady decimal.Decimal
}

// BalanceResponse — структура ответа с балансом пользователя
type BalanceResponse struct {
	TotalTraced decimal.Decimal `json:"total_traced"`
	AmountFreed decimal.Decimal `json:"amount_freed_pending"`
	RefundReady decimal.Decimal `json:"refund_ready"`
}

// AdjustBalanceRequest - модель запроса корректировки баланса администратором
type AdjustBalanceRequest struct {
	Field     string  `json:"field"`
	Amount    float64 `json:"amount"`
	Direction string  `json:"direction"`
	Reason    string  `json:"reason"`
}

// BalanceAdjustment - модель корректировки баланса для хранилища.
// Amount хранится со знаком: положительное значение увеличивает поле, отрицательное уменьшает.
type BalanceAdjustment struct {
	AdminID string
	UserID  string
	Field   string
	Amount  decimal.Decimal
	Reason  string
}

// KnownBalanceField проверяет, что имя поля входит в список корректируемых
func KnownBalanceField(field string) bool {
	switch field {
	case BalanceFieldTotalTraced, BalanceFieldAmountFreed, BalanceFieldRefundReady:
		return true
	}
	return false
}
