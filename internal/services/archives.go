package services

import (
	"context"
	"time"

	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/metrics"
	"github.com/denmor86/packcrm/internal/models"
	"github.com/denmor86/packcrm/internal/storage"
	"go.uber.org/zap"
)

type ArchivesService interface {
	ListArchives(ctx context.Context) ([]models.ArchiveData, error)
	CleanupOldArchives(ctx context.Context, retention time.Duration) (int64, error)
}

type Archives struct {
	Storage storage.IStorage
}

// Создание сервиса
func NewArchives(storage storage.IStorage) *Archives {
	return &Archives{Storage: storage}
}

func (s *Archives) ListArchives(ctx context.Context) ([]models.ArchiveData, error) {
	archives, err := s.Storage.GetArchives(ctx)
	if err != nil {
		logger.Error("Failed to get archives:", zap.Error(err))
		return nil, err
	}
	return archives, nil
}

// CleanupOldArchives - удаление архивных записей старше окна хранения
func (s *Archives) CleanupOldArchives(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	deleted, err := s.Storage.DeleteArchivesBefore(ctx, cutoff)
	if err != nil {
		logger.Error("Failed to cleanup old archives:", zap.Error(err))
		return 0, err
	}
	if deleted > 0 {
		metrics.ArchivesCleaned.Add(float64(deleted))
		logger.Info("Old archives removed:", deleted)
	}
	return deleted, nil
}
