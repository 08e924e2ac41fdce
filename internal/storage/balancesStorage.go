package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	GetBalance = `SELECT user_id, total_traced, amount_freed_pending, refund_ready FROM BALANCES WHERE user_id=$1;`

	// имя колонки подставляется из белого списка balanceColumns
	UpdateBalanceField = `UPDATE BALANCES
							SET %s = %s + $1
							WHERE user_id = $2
							RETURNING %s;`
)

// Белый список колонок баланса, имена приходят извне и в запрос попадают только отсюда
var balanceColumns = map[string]string{
	models.BalanceFieldTotalTraced: "total_traced",
	models.BalanceFieldAmountFreed: "amount_freed_pending",
	models.BalanceFieldRefundReady: "refund_ready",
}

type BalanceDatabase struct {
	DB *Database
}

// Создание хранилища
func NewBalancesStorage(db *Database) BalancesStorage {
	return &BalanceDatabase{DB: db}
}

func (s *BalanceDatabase) GetBalance(ctx context.Context, userID string) (*models.BalanceData, error) {
	var balance models.BalanceData
	err := s.DB.Pool.QueryRow(ctx, GetBalance, userID).Scan(
		&balance.UserID,
		&balance.TotalTraced,
		&balance.AmountFreed,
		&balance.RefundReady,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBalanceNotFound
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &balance, nil
}

// AdjustBalance — изменение поля баланса, запись в журнал операций и
// запись в журнал аудита в одной транзакции. Сумма приходит со знаком,
// нижняя граница поля нарочно не проверяется. Возвращает новое значение поля.
func (s *BalanceDatabase) AdjustBalance(ctx context.Context, adjust models.BalanceAdjustment) (decimal.Decimal, error) {
	column, ok := balanceColumns[adjust.Field]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown balance field: %s", adjust.Field)
	}

	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AdjustBalance. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Изменяем поле баланса и забираем новое значение
	var updated decimal.Decimal
	query := fmt.Sprintf(UpdateBalanceField, column, column, column)
	err = tx.QueryRow(ctx, query, adjust.Amount, adjust.UserID).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrBalanceNotFound
			return decimal.Zero, err
		}
		return decimal.Zero, fmt.Errorf("update balance: %w", err)
	}

	// 2. Запись в журнал операций (сумма со знаком)
	err = insertTransaction(ctx, tx, models.TransactionData{
		UserID: adjust.UserID,
		Type:   models.TransactionTypeAdjustment,
		Amount: adjust.Amount,
		Memo:   adjust.Reason,
	})
	if err != nil {
		return decimal.Zero, err
	}

	// 3. Запись в журнал аудита (дельта всегда положительная, направление в типе действия)
	actionType := models.ActionAddBalance
	if adjust.Amount.LessThan(decimal.Zero) {
		actionType = models.ActionReduceBalance
	}
	delta := adjust.Amount.Abs()
	err = insertAdminAction(ctx, tx, models.AdminActionData{
		AdminID:      adjust.AdminID,
		ActionType:   actionType,
		TargetUserID: adjust.UserID,
		Reason:       adjust.Reason,
		DeltaAmount:  &delta,
		Metadata:     map[string]any{"field": adjust.Field},
	})
	if err != nil {
		return decimal.Zero, err
	}

	if err = tx.Commit(ctx); err != nil {
		return decimal.Zero, fmt.Errorf("commit failed: %w", err)
	}
	return updated, nil
}
