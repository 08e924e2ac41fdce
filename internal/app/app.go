package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/recovery-authority/internal/config"
	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/network/router"
	"github.com/denmor86/recovery-authority/internal/realtime"
	"github.com/denmor86/recovery-authority/internal/storage"
	"github.com/denmor86/recovery-authority/internal/worker"
)

func Run(config config.Config) {

	// инициализация хранилища (создание БД, миграции)
	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err)
	}
	defer db.Close()
	if err := db.Initialize(); err != nil {
		logger.Panic("can't initialize database:", err)
	}

	// канал изменений для подписок клиентов
	hub := realtime.NewHub()
	hub.Start()

	router := router.NewRouter(config, storage.NewStorage(db), hub)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// Создание и запуск воркера выплат
	worker := worker.NewPayoutWorker(router.Payouts, config.Payout)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	worker.Stop()
	hub.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
