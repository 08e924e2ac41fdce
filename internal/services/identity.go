package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/recovery-authority/internal/config"
	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/denmor86/recovery-authority/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidPassphrase  = errors.New("invalid admin passphrase")
	ErrInvalidCredentials = errors.New("invalid email/password")
	ErrProfileBanned      = errors.New("profile is banned")
	ErrFieldsRequired     = errors.New("all fields are required")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) (string, error)
	RegisterAdmin(ctx context.Context, admin models.AdminRequest) (string, error)
	AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.ProfileData, error)
	GenerateJWT(userID string, email string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth    *jwtauth.JWTAuth
	Passphrase string
	Profiles   storage.ProfilesStorage
}

// Создание сервиса
func NewIdentity(cfg config.Config, profiles storage.ProfilesStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Passphrase: cfg.Server.AdminPassphrase, Profiles: profiles}
}

// RegisterUser - регистрация нового пользователя, возвращает идентификатор профиля
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) (string, error) {
	logger.Info("Register user:", user.Email)

	if user.Email == "" || user.Password == "" {
		return "", ErrFieldsRequired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return "", err
	}

	userID, err := i.Profiles.AddProfile(ctx, models.ProfileData{
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("User already exist", user.Email)
			return "", ErrUserAlreadyExists
		}
		logger.Error("Error registering user", user.Email, err)
		return "", err
	}
	return userID, nil
}

// RegisterAdmin - регистрация администратора. Парольная фраза проверяется
// до любого обращения к хранилищу, профиль и роль создаются вместе.
func (i *Identity) RegisterAdmin(ctx context.Context, admin models.AdminRequest) (string, error) {
	if admin.Passphrase != i.Passphrase {
		logger.Warn("Admin registration with invalid passphrase", admin.Email)
		return "", ErrInvalidPassphrase
	}

	logger.Info("Register admin:", admin.Email)

	if admin.Email == "" || admin.Password == "" {
		return "", ErrFieldsRequired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return "", err
	}

	userID, err := i.Profiles.AddProfile(ctx, models.ProfileData{
		Email:        admin.Email,
		FullName:     admin.FullName,
		PasswordHash: string(hashedPassword),
	}, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("User already exist", admin.Email)
			return "", ErrUserAlreadyExists
		}
		logger.Error("Error registering admin", admin.Email, err)
		return "", err
	}
	return userID, nil
}

// AuthenticateUser - аутентификация пользователя по почте и паролю
func (i *Identity) AuthenticateUser(ctx context.Context, user models.UserRequest) (*models.ProfileData, error) {
	logger.Info("Authenticate user", user.Email)

	profile, err := i.Profiles.GetProfile(ctx, user.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// не раскрываем, существует ли учётная запись
			logger.Warn("Unknown user", user.Email)
			return nil, ErrInvalidCredentials
		}
		logger.Error("Error getting profile", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(user.Password)); err != nil {
		logger.Warn("Invalid password", user.Email)
		return nil, ErrInvalidCredentials
	}

	if profile.Banned {
		logger.Warn("Banned profile login attempt", user.Email)
		return nil, ErrProfileBanned
	}

	logger.Info("User authenticated", user.Email)
	return profile, nil
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(userID string, email string) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"user_id":  userID,
		"username": email,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
