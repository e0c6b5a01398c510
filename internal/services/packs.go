package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/metrics"
	"github.com/denmor86/packcrm/internal/models"
	"github.com/denmor86/packcrm/internal/storage"
	"github.com/denmor86/packcrm/internal/validators"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	ErrPackNotFound   = errors.New("pack not found")
	ErrUnknownStatus  = errors.New("unknown pack status")
	ErrInvalidPack    = errors.New("invalid pack data")
	ErrPackTransition = errors.New("pack status transition failed")
	ErrPackArchive    = errors.New("pack archiving failed")
)

type PacksService interface {
	ListPacks(ctx context.Context, filters models.PackFilters) ([]models.PackData, error)
	CreatePack(ctx context.Context, request models.PackRequest) (*models.PackData, error)
	UpdatePack(ctx context.Context, id string, request models.PackUpdateRequest) error
	UpdatePackStatus(ctx context.Context, id string, status string) error
	DeletePack(ctx context.Context, id string) error
}

type Packs struct {
	Storage storage.IStorage
	// защита от повторно выпущенных одинаковых операций (двойной клик в UI)
	inflight singleflight.Group
}

// Создание сервиса
func NewPacks(storage storage.IStorage) *Packs {
	return &Packs{Storage: storage}
}

// ListPacks - выборка посылок: предикат применяется в хранилище,
// строка поиска - уже к полученному списку
func (s *Packs) ListPacks(ctx context.Context, filters models.PackFilters) ([]models.PackData, error) {
	packs, err := s.Storage.GetPacks(ctx, filters)
	if err != nil {
		logger.Error("Failed to get packs:", zap.Error(err))
		return nil, err
	}
	return ApplySearch(packs, filters.Search), nil
}

// CreatePack - создание посылки. Статус всегда выставляется в "Замовлено",
// треки и комментарии создаются пустыми.
func (s *Packs) CreatePack(ctx context.Context, request models.PackRequest) (*models.PackData, error) {
	if err := validators.ValidatePackRequest(request); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPack, err.Error())
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount", ErrInvalidPack)
	}
	amountWithoutDiscount, err := decimal.NewFromString(request.AmountWithoutDiscount)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount without discount", ErrInvalidPack)
	}

	pack := models.PackData{
		PackID:                request.PackID,
		StoreName:             request.StoreName,
		Status:                models.PackStatusOrdered,
		Card:                  request.Card,
		Amount:                amount,
		AmountWithoutDiscount: amountWithoutDiscount,
		Quantity:              request.Quantity,
		Billing:               request.Billing,
		Email:                 request.Email,
		Password:              request.Password,
		ProductType:           request.ProductType,
		TrackNumbers:          []string{},
		Comments:              []string{},
		DropID:                request.DropID,
		AddressID:             request.AddressID,
		SkupID:                request.SkupID,
	}

	created, err := s.Storage.AddPack(ctx, pack)
	if err != nil {
		logger.Error("Failed to add pack:", zap.Error(err))
		return nil, err
	}
	metrics.PacksCreated.Inc()
	return created, nil
}

// UpdatePack - прямое обновление полей посылки, без побочных эффектов
func (s *Packs) UpdatePack(ctx context.Context, id string, request models.PackUpdateRequest) error {
	if request.Card != nil && !validators.CheckCard(*request.Card) {
		return fmt.Errorf("%w: card must be 4 digits", ErrInvalidPack)
	}
	if request.ProductType != nil && !validators.CheckProductType(*request.ProductType) {
		return fmt.Errorf("%w: unknown product type", ErrInvalidPack)
	}

	patch := models.PackPatch{
		StoreName:    request.StoreName,
		Card:         request.Card,
		Quantity:     request.Quantity,
		Billing:      request.Billing,
		Email:        request.Email,
		Password:     request.Password,
		ProductType:  request.ProductType,
		TrackNumbers: request.TrackNumbers,
		Comments:     request.Comments,
		DropID:       request.DropID,
		AddressID:    request.AddressID,
		SkupID:       request.SkupID,
	}
	if request.Amount != nil {
		amount, err := decimal.NewFromString(*request.Amount)
		if err != nil {
			return fmt.Errorf("%w: invalid amount", ErrInvalidPack)
		}
		patch.Amount = &amount
	}
	if request.AmountWithoutDiscount != nil {
		amount, err := decimal.NewFromString(*request.AmountWithoutDiscount)
		if err != nil {
			return fmt.Errorf("%w: invalid amount without discount", ErrInvalidPack)
		}
		patch.AmountWithoutDiscount = &amount
	}

	if err := s.Storage.UpdatePack(ctx, id, patch); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPackNotFound
		}
		logger.Error("Failed to update pack:", zap.Error(err))
		return err
	}
	return nil
}

// UpdatePackStatus - смена статуса посылки. Переход в "Доставлено" дополнительно
// создаёт реф-процесс; оба шага выполняются в одной транзакции хранилища,
// при любой ошибке статус посылки остаётся прежним.
func (s *Packs) UpdatePackStatus(ctx context.Context, id string, status string) error {
	if !validators.CheckStatus(status) {
		return ErrUnknownStatus
	}

	// одинаковые конкурентные запросы по одной посылке схлопываются в один
	_, err, _ := s.inflight.Do(id+":status", func() (interface{}, error) {
		return nil, s.updateStatus(ctx, id, status)
	})
	return err
}

func (s *Packs) updateStatus(ctx context.Context, id string, status string) error {
	if status != models.PackStatusDelivered {
		if err := s.Storage.UpdatePackStatus(ctx, id, status); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrPackNotFound
			}
			logger.Error("Failed to update pack status:", zap.Error(err))
			return err
		}
		return nil
	}

	// переход в "Доставлено": посылка покидает активный список,
	// вместо неё появляется реф-процесс
	pack, err := s.Storage.GetPack(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPackNotFound
		}
		logger.Error("Failed to get pack:", zap.Error(err))
		return err
	}

	trackNumber := ""
	if len(pack.TrackNumbers) > 0 {
		trackNumber = pack.TrackNumbers[0]
	}

	ref := models.RefProcessData{
		PackID:      pack.ID,
		PackName:    pack.PackID,
		StoreName:   pack.StoreName,
		TrackNumber: trackNumber,
		Comments:    pack.Comments,
		DropID:      pack.DropID,
		Status:      models.RefStatusActive,
	}

	if err := s.Storage.DeliverPack(ctx, id, ref); err != nil {
		logger.Error("Failed to deliver pack:", zap.Error(err))
		return fmt.Errorf("%w: %s", ErrPackTransition, err.Error())
	}
	metrics.PacksDelivered.Inc()
	return nil
}

// DeletePack - удаление посылки через архив: сначала снимок в pack_archive,
// затем удаление исходной строки, в одной транзакции.
func (s *Packs) DeletePack(ctx context.Context, id string) error {
	_, err, _ := s.inflight.Do(id+":delete", func() (interface{}, error) {
		return nil, s.deletePack(ctx, id)
	})
	return err
}

func (s *Packs) deletePack(ctx context.Context, id string) error {
	pack, err := s.Storage.GetPack(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPackNotFound
		}
		logger.Error("Failed to get pack:", zap.Error(err))
		return err
	}

	snapshot := models.ArchiveData{
		OriginalPackID:        pack.ID,
		PackID:                pack.PackID,
		StoreName:             pack.StoreName,
		Status:                pack.Status,
		Card:                  pack.Card,
		Amount:                pack.Amount,
		AmountWithoutDiscount: pack.AmountWithoutDiscount,
		Quantity:              pack.Quantity,
		Billing:               pack.Billing,
		Email:                 pack.Email,
		Password:              pack.Password,
		ProductType:           pack.ProductType,
		TrackNumbers:          pack.TrackNumbers,
		Comments:              pack.Comments,
		DropID:                pack.DropID,
		AddressID:             pack.AddressID,
		SkupID:                pack.SkupID,
		OriginalCreatedAt:     pack.CreatedAt,
	}

	if err := s.Storage.ArchivePack(ctx, id, snapshot); err != nil {
		logger.Error("Failed to archive pack:", zap.Error(err))
		return fmt.Errorf("%w: %s", ErrPackArchive, err.Error())
	}
	metrics.PacksDeleted.Inc()
	return nil
}
