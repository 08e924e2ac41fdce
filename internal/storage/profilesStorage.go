package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	InsertProfile = `INSERT INTO PROFILES (id, email, full_name, password)
						VALUES ($1, $2, $3, $4)
						ON CONFLICT (email) DO NOTHING
						RETURNING id;`
	InsertBalance = `INSERT INTO BALANCES (user_id) VALUES ($1);`
	InsertRole    = `INSERT INTO USER_ROLES (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING;`

	GetProfile = `SELECT id, email, full_name, password, banned, created_at FROM PROFILES WHERE email=$1;`
	CheckRole  = `SELECT EXISTS(SELECT 1 FROM USER_ROLES WHERE user_id=$1 AND role=$2);`

	GetAccounts = `SELECT p.id, p.email, p.full_name, p.banned, p.created_at,
						  b.total_traced, b.amount_freed_pending, b.refund_ready
				   FROM PROFILES p
				   JOIN BALANCES b ON b.user_id = p.id
				   ORDER BY p.created_at DESC;`

	UpdateProfileBanned = `UPDATE PROFILES SET banned=$1 WHERE id=$2;`
	DeleteProfileByID   = `DELETE FROM PROFILES WHERE id=$1;`

	GetAdminStats = `SELECT
						 (SELECT COUNT(*) FROM PROFILES),
						 (SELECT COUNT(*) FROM WITHDRAWAL_REQUESTS WHERE status='pending'),
						 (SELECT COALESCE(SUM(total_traced), 0) FROM BALANCES);`
)

type ProfileDatabase struct {
	DB *Database
}

// Создание хранилища
func NewProfilesStorage(db *Database) ProfilesStorage {
	return &ProfileDatabase{DB: db}
}

// AddProfile — добавление профиля, нулевого баланса и ролей в одной транзакции
func (s *ProfileDatabase) AddProfile(ctx context.Context, profile models.ProfileData, roles ...string) (string, error) {
	userID := uuid.New().String()

	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AddProfile. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var insertedID string
	err = tx.QueryRow(ctx, InsertProfile, userID, profile.Email, profile.FullName, profile.PasswordHash).Scan(&insertedID)
	if err != nil {
		// ON CONFLICT DO NOTHING не возвращает строку, если email занят
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrAlreadyExists
			return "", err
		}
		// Проверяем именно нарушение уникальности (код 23505)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			err = ErrAlreadyExists
			return "", err
		}
		return "", fmt.Errorf("failed to add profile: %w", err)
	}

	// Нулевой баланс создаётся вместе с профилем
	if _, err = tx.Exec(ctx, InsertBalance, userID); err != nil {
		return "", fmt.Errorf("failed to add balance: %w", err)
	}

	for _, role := range roles {
		if _, err = tx.Exec(ctx, InsertRole, userID, role); err != nil {
			return "", fmt.Errorf("failed to add role: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit failed: %w", err)
	}
	return userID, nil
}

func (s *ProfileDatabase) GetProfile(ctx context.Context, email string) (*models.ProfileData, error) {
	var (
		userID    string
		dbEmail   string
		fullName  string
		password  string
		banned    bool
		createdAt time.Time
	)
	err := s.DB.Pool.QueryRow(ctx, GetProfile, email).Scan(&userID, &dbEmail, &fullName, &password, &banned, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &models.ProfileData{
		UserID:       userID,
		Email:        dbEmail,
		FullName:     fullName,
		PasswordHash: password,
		Banned:       banned,
		CreatedAt:    createdAt,
	}, nil
}

// GetAccounts - все профили вместе с балансами, новые первыми, без пагинации
func (s *ProfileDatabase) GetAccounts(ctx context.Context) ([]models.AccountData, error) {
	var accounts []models.AccountData
	rows, err := s.DB.Pool.Query(ctx, GetAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	for rows.Next() {
		var (
			account models.AccountData
			traced  decimal.Decimal
			freed   decimal.Decimal
			refund  decimal.Decimal
		)
		err := rows.Scan(
			&account.Profile.UserID,
			&account.Profile.Email,
			&account.Profile.FullName,
			&account.Profile.Banned,
			&account.Profile.CreatedAt,
			&traced,
			&freed,
			&refund,
		)
		if err != nil {
			return accounts, fmt.Errorf("failed scan account data: %w", err)
		}
		account.Balance = models.BalanceData{
			UserID:      account.Profile.UserID,
			TotalTraced: traced,
			AmountFreed: freed,
			RefundReady: refund,
		}
		accounts = append(accounts, account)
	}
	return accounts, err
}

// SetBanned — смена флага блокировки и запись в журнал аудита в одной транзакции
func (s *ProfileDatabase) SetBanned(ctx context.Context, banned bool, action models.AdminActionData) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("SetBanned. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	result, err := tx.Exec(ctx, UpdateProfileBanned, banned, action.TargetUserID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		err = ErrUserNotFound
		return err
	}

	if err = insertAdminAction(ctx, tx, action); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

// DeleteProfile — удаление профиля (связанные строки удаляет каскад в схеме)
// и запись в журнал аудита в одной транзакции
func (s *ProfileDatabase) DeleteProfile(ctx context.Context, action models.AdminActionData) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("DeleteProfile. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	result, err := tx.Exec(ctx, DeleteProfileByID, action.TargetUserID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		err = ErrUserNotFound
		return err
	}

	if err = insertAdminAction(ctx, tx, action); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

// HasRole - проверка наличия роли у пользователя
func (s *ProfileDatabase) HasRole(ctx context.Context, userID string, role string) (bool, error) {
	var exist bool
	if err := s.DB.Pool.QueryRow(ctx, CheckRole, userID, role).Scan(&exist); err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}
	return exist, nil
}

// GetStats - сводные показатели для административной панели
func (s *ProfileDatabase) GetStats(ctx context.Context) (*models.StatsResponse, error) {
	var stats models.StatsResponse
	err := s.DB.Pool.QueryRow(ctx, GetAdminStats).Scan(
		&stats.TotalUsers,
		&stats.PendingWithdrawals,
		&stats.TotalTraced,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}
