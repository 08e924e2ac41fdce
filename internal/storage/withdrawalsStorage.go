package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	InsertWithdrawal = `INSERT INTO WITHDRAWAL_REQUESTS (id, user_id, wallet_address, network, amount, status)
							VALUES ($1, $2, $3, $4, $5, 'pending')
							RETURNING created_at;`

	GetUserWithdrawals = `SELECT id, user_id, wallet_address, network, amount, status, admin_reason, created_at
						  FROM WITHDRAWAL_REQUESTS
						  WHERE user_id=$1
						  ORDER BY created_at DESC
						  LIMIT $2;`

	GetAllWithdrawals = `SELECT w.id, w.user_id, w.wallet_address, w.network, w.amount, w.status, w.admin_reason, w.created_at,
								p.email, p.full_name
						 FROM WITHDRAWAL_REQUESTS w
						 JOIN PROFILES p ON p.id = w.user_id
						 ORDER BY w.created_at DESC;`

	// статус проверяется в WHERE, повторное решение по заявке не проходит
	UpdateWithdrawalReview = `UPDATE WITHDRAWAL_REQUESTS
							  SET status = $1,
							      admin_id = $2,
							      admin_reason = $3,
							      updated_at = NOW()
							  WHERE id = $4 AND status = 'pending'
							  RETURNING user_id;`

	CheckWithdrawalExists = `SELECT EXISTS(SELECT 1 FROM WITHDRAWAL_REQUESTS WHERE id=$1);`

	ClaimWithdrawals = `UPDATE WITHDRAWAL_REQUESTS
						SET status = 'processing',
						    retry_count = retry_count + 1,
						    updated_at = NOW()
						WHERE id IN (
						    SELECT id FROM WITHDRAWAL_REQUESTS
						    WHERE status = 'approved' AND retry_count < 3
						    ORDER BY created_at
						    LIMIT $1
						    FOR UPDATE SKIP LOCKED
						)
						RETURNING id, user_id, wallet_address, network, amount;`

	UpdateWithdrawalStatus = `UPDATE WITHDRAWAL_REQUESTS
							  SET status = $1,
							      updated_at = NOW()
							  WHERE id = $2
							  RETURNING user_id;`
)

type WithdrawalDatabase struct {
	DB *Database
}

// Создание хранилища
func NewWithdrawalsStorage(db *Database) WithdrawalsStorage {
	return &WithdrawalDatabase{DB: db}
}

// AddWithdrawal - создание заявки на вывод средств, статус всегда "pending"
func (s *WithdrawalDatabase) AddWithdrawal(ctx context.Context, withdrawal models.WithdrawalData) (*models.WithdrawalData, error) {
	withdrawal.ID = uuid.New().String()
	withdrawal.Status = models.WithdrawalStatusPending

	err := s.DB.Pool.QueryRow(ctx, InsertWithdrawal,
		withdrawal.ID,
		withdrawal.UserID,
		withdrawal.WalletAddress,
		withdrawal.Network,
		withdrawal.Amount,
	).Scan(&withdrawal.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add withdrawal: %w", err)
	}
	return &withdrawal, nil
}

func (s *WithdrawalDatabase) GetUserWithdrawals(ctx context.Context, userID string, limit int) ([]models.WithdrawalData, error) {
	var withdrawals []models.WithdrawalData
	rows, err := s.DB.Pool.Query(ctx, GetUserWithdrawals, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals: %w", err)
	}
	for rows.Next() {
		var withdrawal models.WithdrawalData
		err := rows.Scan(
			&withdrawal.ID,
			&withdrawal.UserID,
			&withdrawal.WalletAddress,
			&withdrawal.Network,
			&withdrawal.Amount,
			&withdrawal.Status,
			&withdrawal.AdminReason,
			&withdrawal.CreatedAt,
		)
		if err != nil {
			return withdrawals, fmt.Errorf("failed scan withdrawal data: %w", err)
		}
		withdrawals = append(withdrawals, withdrawal)
	}
	return withdrawals, err
}

// GetWithdrawals - все заявки вместе с данными владельца, новые первыми, без пагинации
func (s *WithdrawalDatabase) GetWithdrawals(ctx context.Context) ([]models.WithdrawalReview, error) {
	var reviews []models.WithdrawalReview
	rows, err := s.DB.Pool.Query(ctx, GetAllWithdrawals)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals: %w", err)
	}
	for rows.Next() {
		var review models.WithdrawalReview
		err := rows.Scan(
			&review.Withdrawal.ID,
			&review.Withdrawal.UserID,
			&review.Withdrawal.WalletAddress,
			&review.Withdrawal.Network,
			&review.Withdrawal.Amount,
			&review.Withdrawal.Status,
			&review.Withdrawal.AdminReason,
			&review.Withdrawal.CreatedAt,
			&review.Email,
			&review.FullName,
		)
		if err != nil {
			return reviews, fmt.Errorf("failed scan withdrawal review data: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, err
}

// ReviewWithdrawal — решение администратора по заявке и запись в журнал аудита
// в одной транзакции. Обновление проходит только пока заявка в статусе "pending",
// гонка двух администраторов решается на уровне БД. Возвращает id владельца заявки.
func (s *WithdrawalDatabase) ReviewWithdrawal(ctx context.Context, requestID string, status string, action models.AdminActionData) (string, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("ReviewWithdrawal. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var userID string
	err = tx.QueryRow(ctx, UpdateWithdrawalReview, status, action.AdminID, action.Reason, requestID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// заявки нет вообще или она уже рассмотрена
			var exist bool
			if checkErr := s.DB.Pool.QueryRow(ctx, CheckWithdrawalExists, requestID).Scan(&exist); checkErr != nil {
				err = fmt.Errorf("failed to check withdrawal exists: %w", checkErr)
				return "", err
			}
			if !exist {
				err = ErrWithdrawalNotFound
				return "", err
			}
			err = ErrNotPending
			return "", err
		}
		return "", fmt.Errorf("failed to update withdrawal: %w", err)
	}

	action.TargetUserID = userID
	if err = insertAdminAction(ctx, tx, action); err != nil {
		return "", err
	}

	if err = tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit failed: %w", err)
	}
	return userID, nil
}

// ClaimWithdrawalsForPayout - захват пачки одобренных заявок под выплату (статус становится "processing")
func (s *WithdrawalDatabase) ClaimWithdrawalsForPayout(ctx context.Context, count int) ([]models.WithdrawalData, error) {
	var withdrawals []models.WithdrawalData
	rows, err := s.DB.Pool.Query(ctx, ClaimWithdrawals, count)
	if err != nil {
		return nil, fmt.Errorf("failed to claim withdrawals: %w", err)
	}
	for rows.Next() {
		var withdrawal models.WithdrawalData
		err := rows.Scan(
			&withdrawal.ID,
			&withdrawal.UserID,
			&withdrawal.WalletAddress,
			&withdrawal.Network,
			&withdrawal.Amount,
		)
		if err != nil {
			return withdrawals, fmt.Errorf("failed scan claimed withdrawal: %w", err)
		}
		withdrawal.Status = models.WithdrawalStatusProcessing
		withdrawals = append(withdrawals, withdrawal)
	}
	return withdrawals, err
}

// SetWithdrawalStatus - смена статуса заявки, возвращает id владельца
func (s *WithdrawalDatabase) SetWithdrawalStatus(ctx context.Context, requestID string, status string) (string, error) {
	var userID string
	err := s.DB.Pool.QueryRow(ctx, UpdateWithdrawalStatus, status, requestID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrWithdrawalNotFound
		}
		return "", fmt.Errorf("failed to update withdrawal status: %w", err)
	}
	return userID, nil
}
