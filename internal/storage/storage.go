package storage

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/packcrm/internal/models"
)

type PacksStorage interface {
	GetPack(ctx context.Context, id string) (*models.PackData, error)
	GetPacks(ctx context.Context, filters models.PackFilters) ([]models.PackData, error)
	AddPack(ctx context.Context, pack models.PackData) (*models.PackData, error)
	UpdatePack(ctx context.Context, id string, patch models.PackPatch) error
	UpdatePackStatus(ctx context.Context, id string, status string) error
	DeliverPack(ctx context.Context, id string, ref models.RefProcessData) error
	ArchivePack(ctx context.Context, id string, snapshot models.ArchiveData) error
}

type DropsStorage interface {
	AddDrop(ctx context.Context, name string, geo string) (*models.DropData, error)
	GetDrops(ctx context.Context) ([]models.DropData, error)
	GetDrop(ctx context.Context, id string) (*models.DropData, error)
	AddAddress(ctx context.Context, address models.AddressData) (*models.AddressData, error)
	GetAddresses(ctx context.Context, dropID string) ([]models.AddressData, error)
}

type LookupsStorage interface {
	AddBilling(ctx context.Context, name string) (*models.LookupData, error)
	GetBillings(ctx context.Context) ([]models.LookupData, error)
	AddSkup(ctx context.Context, name string) (*models.LookupData, error)
	GetSkups(ctx context.Context) ([]models.LookupData, error)
}

type RefsStorage interface {
	GetRefProcesses(ctx context.Context, filters models.RefFilters) ([]models.RefProcessData, error)
	UpdateRefProcess(ctx context.Context, id string, patch models.RefPatch) error
}

type ArchivesStorage interface {
	GetArchives(ctx context.Context) ([]models.ArchiveData, error)
	DeleteArchivesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// IStorage - общий интерфейс хранилища для сервисов
type IStorage interface {
	PacksStorage
	DropsStorage
	LookupsStorage
	RefsStorage
	ArchivesStorage
}

// Storage - реализация хранилища поверх Postgres
type Storage struct {
	PacksStorage
	DropsStorage
	LookupsStorage
	RefsStorage
	ArchivesStorage
}

// Создание хранилища
func NewStorage(db *Database) *Storage {
	return &Storage{
		PacksStorage:    NewPacksStorage(db),
		DropsStorage:    NewDropsStorage(db),
		LookupsStorage:  NewLookupsStorage(db),
		RefsStorage:     NewRefsStorage(db),
		ArchivesStorage: NewArchivesStorage(db),
	}
}

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
