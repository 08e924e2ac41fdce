package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Роли пользователей
const (
	RoleAdmin = "admin"
)

// UserRequest - модель для регистрации и аутентификации пользователя, приходит извне
type UserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// AdminRequest - модель для регистрации администратора, дополнительно содержит парольную фразу
type AdminRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name,omitempty"`
	Passphrase string `json:"passphrase"`
}

// ProfileData - модель профиля пользователя из хранилища
type ProfileData struct {
	UserID       string
	Email        string
	FullName     string
	PasswordHash string
	Banned       bool
	CreatedAt    time.Time
}

// AccountData - профиль пользователя вместе с его балансом (для админского списка)
type AccountData struct {
	Profile ProfileData
	Balance BalanceData
}

// AccountResponse - модель профиля с балансом для выдачи
type AccountResponse struct {
	UserID      string          `json:"user_id"`
	Email       string          `json:"email"`
	FullName    string          `json:"full_name,omitempty"`
	Banned      bool            `json:"banned"`
	CreatedAt   string          `json:"created_at"`
	TotalTraced decimal.Decimal `json:"total_traced"`
	RefundReady decimal.Decimal `json:"refund_ready"`
}
