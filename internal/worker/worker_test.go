package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/packcrm/internal/config"
	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/services"
	"github.com/denmor86/packcrm/internal/storage/mocks"
	"github.com/sony/gobreaker"
	"go.uber.org/mock/gomock"
)

func TestArchiveWorker_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	mockStorage.EXPECT().DeleteArchivesBefore(gomock.Any(), gomock.Any()).Return(int64(1), nil).MinTimes(1)

	worker := NewArchiveWorker(services.NewArchives(mockStorage), config.Archive)
	worker.PollInterval = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	worker.Start(ctx)
	time.Sleep(100 * time.Millisecond)
	worker.Stop()
}

func TestArchiveWorker_Cleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	worker := NewArchiveWorker(services.NewArchives(mockStorage), config.Archive)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// ошибка хранилища повторяется до исчерпания попыток
	mockStorage.EXPECT().DeleteArchivesBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("failed to delete archives")).Times(4)
	worker.Cleanup(ctx)

	// успешный проход
	mockStorage.EXPECT().DeleteArchivesBefore(gomock.Any(), gomock.Any()).Return(int64(2), nil)
	worker.Cleanup(ctx)

	if worker.Breaker.State() == gobreaker.StateOpen {
		t.Errorf("Expected breaker to stay closed after recovery")
	}
}
