package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/models"
	"github.com/denmor86/recovery-authority/internal/services"
)

// RegisterUserHandler — регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		// регистрация в Identity
		userID, err := i.RegisterUser(r.Context(), user)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				// пользователь уже существует
				logger.Warn("Error register user", user.Email)
				http.Error(w, "email already exist", http.StatusConflict)
			case errors.Is(err, services.ErrFieldsRequired):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				// ошибка регистрации
				logger.Error("Error register user", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		// Генерация JWT токена для зарегистрированного пользователя
		token, err := i.GenerateJWT(userID, user.Email)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		// Пользователь зарегистрирован и авторизован
		logger.Info("User registered and authenticated", user.Email)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}

// RegisterAdminHandler — регистрация администратора по парольной фразе
func RegisterAdminHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var admin models.AdminRequest
		if err := json.NewDecoder(r.Body).Decode(&admin); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		userID, err := i.RegisterAdmin(r.Context(), admin)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidPassphrase):
				http.Error(w, "Invalid Passphrase", http.StatusForbidden)
			case errors.Is(err, services.ErrUserAlreadyExists):
				logger.Warn("Error register admin", admin.Email)
				http.Error(w, "email already exist", http.StatusConflict)
			case errors.Is(err, services.ErrFieldsRequired):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				logger.Error("Error register admin", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		token, err := i.GenerateJWT(userID, admin.Email)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		logger.Info("Admin registered and authenticated", admin.Email)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}

// AuthenticateUserHandle — аутентификация пользователя
func AuthenticateUserHandle(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		// аутентификация в Identity
		profile, err := i.AuthenticateUser(r.Context(), user)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				logger.Warn("Authentication failed", user.Email)
				http.Error(w, "Invalid email/password", http.StatusUnauthorized)
			case errors.Is(err, services.ErrProfileBanned):
				logger.Warn("Banned profile", user.Email)
				http.Error(w, "Profile is banned", http.StatusForbidden)
			default:
				logger.Error("Error authenticate user", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}
		// генерация токена
		token, err := i.GenerateJWT(profile.UserID, profile.Email)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		// пользователь прошел авторизацию
		logger.Info("User authenticated", user.Email)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}
