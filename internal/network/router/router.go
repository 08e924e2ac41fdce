package router

import (
	"github.com/denmor86/recovery-authority/internal/config"
	"github.com/denmor86/recovery-authority/internal/network/handlers"
	"github.com/denmor86/recovery-authority/internal/network/middleware"
	"github.com/denmor86/recovery-authority/internal/realtime"
	"github.com/denmor86/recovery-authority/internal/services"
	"github.com/denmor86/recovery-authority/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config      config.Config
	Hub         *realtime.Hub
	Identity    services.IdentityService
	Balances    services.BalancesService
	Withdrawals services.WithdrawalsService
	Admin       services.AdminService
	Payouts     services.PayoutService
}

func NewRouter(config config.Config, storage storage.Storage, hub *realtime.Hub) *Router {
	return &Router{
		Config:      config,
		Hub:         hub,
		Identity:    services.NewIdentity(config, storage.Profiles),
		Balances:    services.NewBalances(storage.Balances),
		Withdrawals: services.NewWithdrawals(storage.Withdrawals, storage.Balances, hub),
		Admin:       services.NewAdmin(storage.Profiles, storage.Balances, storage.Withdrawals, hub),
		Payouts:     services.NewPayout(config.Payout.PayoutAddr, storage.Withdrawals, hub),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.ThrottleAuth())
				r.Post("/register", handlers.RegisterUserHandler(router.Identity))
				r.Post("/login", handlers.AuthenticateUserHandle(router.Identity))
			})
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Get("/balance", handlers.GetUserBalanceHandler(router.Balances))
				r.Post("/withdrawals", handlers.SubmitWithdrawalHandler(router.Withdrawals))
				r.Get("/withdrawals", handlers.GetNotificationsHandler(router.Withdrawals))
				r.Get("/notifications", handlers.UserNotificationsHandler(router.Hub))
			})
		})
		r.Route("/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.ThrottleAuth())
				r.Post("/register", handlers.RegisterAdminHandler(router.Identity))
			})
			// роль администратора проверяется один раз общей прослойкой
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Use(middleware.AdminOnly(router.Admin))
				r.Get("/users", handlers.GetAccountsHandler(router.Admin))
				r.Post("/users/{userID}/balance", handlers.AdjustBalanceHandler(router.Admin))
				r.Post("/users/{userID}/ban", handlers.BanUserHandler(router.Admin))
				r.Delete("/users/{userID}", handlers.DeleteUserHandler(router.Admin))
				r.Get("/withdrawals", handlers.GetWithdrawalsReviewHandler(router.Admin))
				r.Post("/withdrawals/{requestID}/review", handlers.ReviewWithdrawalHandler(router.Admin))
				r.Get("/stats", handlers.GetStatsHandler(router.Admin))
				r.Get("/notifications", handlers.AdminNotificationsHandler(router.Hub))
			})
		})
	})
	return r
}
