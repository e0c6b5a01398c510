package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/packcrm/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	InsertDrop = `INSERT INTO DROPS (id, name, geo)
				  VALUES ($1, $2, $3)
				  ON CONFLICT (name) DO NOTHING
				  RETURNING id;`
	GetAllDrops = `SELECT id, name, geo FROM DROPS ORDER BY name;`
	GetDropByID = `SELECT id, name, geo FROM DROPS WHERE id=$1;`

	InsertAddress = `INSERT INTO ADDRESSES (id, drop_id, geo, delivery_method, address)
					 VALUES ($1, $2, $3, $4, $5);`
	GetAddressesByDrop = `SELECT id, drop_id, geo, delivery_method, address FROM ADDRESSES WHERE drop_id=$1;`
)

type DropDatabase struct {
	DB *Database
}

// Создание хранилища дропов
func NewDropsStorage(db *Database) DropsStorage {
	return &DropDatabase{DB: db}
}

func (s *DropDatabase) AddDrop(ctx context.Context, name string, geo string) (*models.DropData, error) {
	id := uuid.New().String()
	var insertedID string
	err := s.DB.Pool.QueryRow(ctx, InsertDrop, id, name, geo).Scan(&insertedID)

	if err == nil {
		return &models.DropData{ID: insertedID, Name: name, Geo: geo}, nil
	}

	// ON CONFLICT DO NOTHING не возвращает строку при дубликате имени
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAlreadyExists
	}

	return nil, fmt.Errorf("failed to add drop: %w", err)
}

func (s *DropDatabase) GetDrops(ctx context.Context) ([]models.DropData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetAllDrops)
	if err != nil {
		return nil, fmt.Errorf("failed to get drops: %w", err)
	}
	defer rows.Close()

	var drops []models.DropData
	for rows.Next() {
		var drop models.DropData
		if err := rows.Scan(&drop.ID, &drop.Name, &drop.Geo); err != nil {
			return drops, fmt.Errorf("failed scan drop data: %w", err)
		}
		drops = append(drops, drop)
	}
	return drops, rows.Err()
}

func (s *DropDatabase) GetDrop(ctx context.Context, id string) (*models.DropData, error) {
	var drop models.DropData
	err := s.DB.Pool.QueryRow(ctx, GetDropByID, id).Scan(&drop.ID, &drop.Name, &drop.Geo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get drop: %w", err)
	}
	return &drop, nil
}

func (s *DropDatabase) AddAddress(ctx context.Context, address models.AddressData) (*models.AddressData, error) {
	address.ID = uuid.New().String()
	_, err := s.DB.Pool.Exec(ctx, InsertAddress, address.ID, address.DropID, address.Geo, address.DeliveryMethod, address.Address)
	if err != nil {
		// нарушение внешнего ключа: дроп не существует
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to add address: %w", err)
	}
	return &address, nil
}

func (s *DropDatabase) GetAddresses(ctx context.Context, dropID string) ([]models.AddressData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetAddressesByDrop, dropID)
	if err != nil {
		return nil, fmt.Errorf("failed to get addresses: %w", err)
	}
	defer rows.Close()

	var addresses []models.AddressData
	for rows.Next() {
		var address models.AddressData
		if err := rows.Scan(&address.ID, &address.DropID, &address.Geo, &address.DeliveryMethod, &address.Address); err != nil {
			return addresses, fmt.Errorf("failed scan address data: %w", err)
		}
		addresses = append(addresses, address)
	}
	return addresses, rows.Err()
}
