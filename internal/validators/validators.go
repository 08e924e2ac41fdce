package validators

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Шаблон адреса кошелька: "0x" и ровно 40 шестнадцатеричных символов.
// Применяется ко всем поддерживаемым сетям без исключения.
var walletAddressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// CheckWalletAddress проверяет формат адреса кошелька
func CheckWalletAddress(address string) bool {
	return walletAddressPattern.MatchString(address)
}

// CheckAmount проверяет, что сумма положительная
func CheckAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// CheckAmountLimit проверяет, что сумма не превышает доступный лимит
func CheckAmountLimit(amount decimal.Decimal, limit decimal.Decimal) bool {
	return amount.LessThanOrEqual(limit)
}
