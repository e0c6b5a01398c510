package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/models"
	"github.com/denmor86/packcrm/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrRefNotFound      = errors.New("ref process not found")
	ErrInvalidRefUpdate = errors.New("invalid ref process update")
)

type RefsService interface {
	ListRefProcesses(ctx context.Context, filters models.RefFilters) ([]models.RefProcessData, error)
	UpdateRefProcess(ctx context.Context, id string, request models.RefUpdateRequest) error
}

type Refs struct {
	Storage storage.IStorage
}

// Создание сервиса
func NewRefs(storage storage.IStorage) *Refs {
	return &Refs{Storage: storage}
}

func (s *Refs) ListRefProcesses(ctx context.Context, filters models.RefFilters) ([]models.RefProcessData, error) {
	refs, err := s.Storage.GetRefProcesses(ctx, filters)
	if err != nil {
		logger.Error("Failed to get ref processes:", zap.Error(err))
		return nil, err
	}
	return refs, nil
}

// parseAmount - разбор необязательного денежного поля из запроса
func parseAmount(value *string, name string) (*decimal.Decimal, error) {
	if value == nil {
		return nil, nil
	}
	amount, err := decimal.NewFromString(*value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", ErrInvalidRefUpdate, name)
	}
	return &amount, nil
}

// UpdateRefProcess - обновление статуса и финансовых полей реф-процесса.
// Финансовые поля независимы от учётных полей посылки.
func (s *Refs) UpdateRefProcess(ctx context.Context, id string, request models.RefUpdateRequest) error {
	if request.Status != nil &&
		*request.Status != models.RefStatusActive && *request.Status != models.RefStatusClosed {
		return fmt.Errorf("%w: unknown status", ErrInvalidRefUpdate)
	}

	patch := models.RefPatch{Status: request.Status}

	var err error
	if patch.DropPayment, err = parseAmount(request.DropPayment, "drop payment"); err != nil {
		return err
	}
	if patch.CarrierPayment, err = parseAmount(request.CarrierPayment, "carrier payment"); err != nil {
		return err
	}
	if patch.AdditionalExpenses, err = parseAmount(request.AdditionalExpenses, "additional expenses"); err != nil {
		return err
	}
	if patch.BoxerExpenses, err = parseAmount(request.BoxerExpenses, "boxer expenses"); err != nil {
		return err
	}
	if patch.NetProfit, err = parseAmount(request.NetProfit, "net profit"); err != nil {
		return err
	}

	if err := s.Storage.UpdateRefProcess(ctx, id, patch); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRefNotFound
		}
		logger.Error("Failed to update ref process:", zap.Error(err))
		return err
	}
	return nil
}
