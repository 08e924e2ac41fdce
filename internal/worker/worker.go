package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/recovery-authority/internal/config"
	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "payout-gateway",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до шлюза
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// PayoutWorker - воркер обработки одобренных заявок на вывод средств
type PayoutWorker struct {
	Payouts      services.PayoutService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewPayoutWorker - конструктор обработчика выплат
func NewPayoutWorker(payouts services.PayoutService, cfg config.PayoutConfig) *PayoutWorker {
	return &PayoutWorker{
		Payouts:      payouts,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *PayoutWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *PayoutWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *PayoutWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("PayoutWorker signal stop")
			return
		case <-ticker.C:
			w.ProcessPayouts(ctx)
		}
	}
}

// ProcessPayouts - обработка пачки одобренных заявок
func (w *PayoutWorker) ProcessPayouts(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	withdrawals, err := w.Payouts.ClaimPayouts(ctx, w.BatchSize)
	if err != nil {
		logger.Error("error claim withdrawals for payout", err)
		return
	}

	for _, withdrawal := range withdrawals {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Payouts.ProcessPayout(ctx, withdrawal)
		})

		if err != nil {
			logger.Error("Error payout processing", err)
		}
	}
}
