package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	InsertTransaction = `INSERT INTO TRANSACTIONS (user_id, type, amount, memo)
							VALUES ($1, $2, $3, $4);`
	InsertAdminAction = `INSERT INTO ADMIN_ACTIONS (admin_id, action_type, target_user_id, reason, delta_amount, metadata)
							VALUES ($1, $2, $3, $4, $5, $6);`
)

// insertTransaction - добавление записи в журнал операций в рамках открытой транзакции
func insertTransaction(ctx context.Context, tx pgx.Tx, txn models.TransactionData) error {
	_, err := tx.Exec(ctx, InsertTransaction, txn.UserID, txn.Type, txn.Amount, txn.Memo)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// insertAdminAction - добавление записи в журнал действий администратора в рамках открытой транзакции
func insertAdminAction(ctx context.Context, tx pgx.Tx, action models.AdminActionData) error {
	var metadata []byte
	if action.Metadata != nil {
		data, err := json.Marshal(action.Metadata)
		if err != nil {
			return fmt.Errorf("marshal admin action metadata: %w", err)
		}
		metadata = data
	}
	_, err := tx.Exec(ctx, InsertAdminAction,
		action.AdminID,
		action.ActionType,
		action.TargetUserID,
		action.Reason,
		action.DeltaAmount,
		metadata,
	)
	if err != nil {
		return fmt.Errorf("insert admin action: %w", err)
	}
	return nil
}
