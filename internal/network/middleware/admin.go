package middleware

import (
	"net/http"

	"github.com/denmor86/recovery-authority/internal/helpers"
	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/services"
	"go.uber.org/zap"
)

// AdminOnly — проверка роли администратора для всей административной ветки
// маршрутов. Проверка выполняется один раз на запрос здесь, обработчики
// роль повторно не проверяют.
func AdminOnly(admin services.AdminService) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := helpers.GetUserID(r.Context())
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			isAdmin, err := admin.IsAdmin(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to check admin role", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			// отсутствие роли или ошибка проверки — отказ в доступе
			if !isAdmin {
				logger.Warn("Access denied, no admin role", userID)
				http.Error(w, "Access Denied", http.StatusForbidden)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
