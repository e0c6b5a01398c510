package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/packcrm/internal/config"
	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/services"
	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "pack-archive-cleanup",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до хранилища
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// ArchiveWorker - фоновая очистка архива посылок по сроку хранения
type ArchiveWorker struct {
	Archives     services.ArchivesService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	Retention    time.Duration
	PollInterval time.Duration
}

// NewArchiveWorker - конструктор обработчика очистки архива
func NewArchiveWorker(archives services.ArchivesService, cfg config.ArchiveConfig) *ArchiveWorker {
	return &ArchiveWorker{
		Archives:     archives,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		Retention:    cfg.Retention,
		PollInterval: cfg.CleanupInterval,
	}
}

// Start - запускает воркер в фоне
func (w *ArchiveWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *ArchiveWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *ArchiveWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("ArchiveWorker signal stop")
			return
		case <-ticker.C:
			w.Cleanup(ctx)
		}
	}
}

// Cleanup - один проход очистки архива
func (w *ArchiveWorker) Cleanup(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	_, err := w.Breaker.Execute(func() (interface{}, error) {
		// фоновая задача, в отличие от действий пользователя, может повторяться
		backoff := retry.WithMaxRetries(3, retry.NewExponential(time.Second))
		return nil, retry.Do(ctx, backoff, func(ctx context.Context) error {
			if _, err := w.Archives.CleanupOldArchives(ctx, w.Retention); err != nil {
				return retry.RetryableError(err)
			}
			return nil
		})
	})

	if err != nil {
		logger.Error("Error archive cleanup", err)
	}
}
