package services

import (
	"context"
	"errors"

	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/models"
	"github.com/denmor86/packcrm/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrDuplicateName = errors.New("name already exists")
	ErrDropNotFound  = errors.New("drop not found")
)

type LookupsService interface {
	AddDrop(ctx context.Context, request models.DropRequest) (*models.DropData, error)
	ListDrops(ctx context.Context) ([]models.DropData, error)
	AddAddress(ctx context.Context, dropID string, request models.AddressRequest) (*models.AddressData, error)
	ListAddresses(ctx context.Context, dropID string) ([]models.AddressData, error)
	AddBilling(ctx context.Context, name string) (*models.LookupData, error)
	ListBillings(ctx context.Context) ([]models.LookupData, error)
	AddSkup(ctx context.Context, name string) (*models.LookupData, error)
	ListSkups(ctx context.Context) ([]models.LookupData, error)
}

type Lookups struct {
	Storage storage.IStorage
}

// Создание сервиса
func NewLookups(storage storage.IStorage) *Lookups {
	return &Lookups{Storage: storage}
}

// AddDrop - добавление дропа. Уникальность имени обеспечивает только индекс в БД,
// проигравший из двух конкурентных вызовов получает ErrDuplicateName.
func (s *Lookups) AddDrop(ctx context.Context, request models.DropRequest) (*models.DropData, error) {
	drop, err := s.Storage.AddDrop(ctx, request.Name, request.Geo)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrDuplicateName
		}
		logger.Error("Failed to add drop:", zap.Error(err))
		return nil, err
	}
	return drop, nil
}

func (s *Lookups) ListDrops(ctx context.Context) ([]models.DropData, error) {
	return s.Storage.GetDrops(ctx)
}

// AddAddress - добавление адреса дропу. Дроп должен существовать.
func (s *Lookups) AddAddress(ctx context.Context, dropID string, request models.AddressRequest) (*models.AddressData, error) {
	address := models.AddressData{
		DropID:         dropID,
		Geo:            request.Geo,
		DeliveryMethod: request.DeliveryMethod,
		Address:        request.Address,
	}
	created, err := s.Storage.AddAddress(ctx, address)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrDropNotFound
		}
		logger.Error("Failed to add address:", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Lookups) ListAddresses(ctx context.Context, dropID string) ([]models.AddressData, error) {
	return s.Storage.GetAddresses(ctx, dropID)
}

func (s *Lookups) AddBilling(ctx context.Context, name string) (*models.LookupData, error) {
	billing, err := s.Storage.AddBilling(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrDuplicateName
		}
		logger.Error("Failed to add billing:", zap.Error(err))
		return nil, err
	}
	return billing, nil
}

func (s *Lookups) ListBillings(ctx context.Context) ([]models.LookupData, error) {
	return s.Storage.GetBillings(ctx)
}

func (s *Lookups) AddSkup(ctx context.Context, name string) (*models.LookupData, error) {
	skup, err := s.Storage.AddSkup(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrDuplicateName
		}
		logger.Error("Failed to add skup:", zap.Error(err))
		return nil, err
	}
	return skup, nil
}

func (s *Lookups) ListSkups(ctx context.Context) ([]models.LookupData, error) {
	return s.Storage.GetSkups(ctx)
}
