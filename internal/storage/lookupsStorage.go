package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/packcrm/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	InsertBilling = `INSERT INTO BILLINGS (id, name)
					 VALUES ($1, $2)
					 ON CONFLICT (name) DO NOTHING
					 RETURNING id;`
	GetAllBillings = `SELECT id, name FROM BILLINGS ORDER BY name;`

	InsertSkup = `INSERT INTO SKUPS (id, name)
				  VALUES ($1, $2)
				  ON CONFLICT (name) DO NOTHING
				  RETURNING id;`
	GetAllSkups = `SELECT id, name FROM SKUPS ORDER BY name;`
)

type LookupDatabase struct {
	DB *Database
}

// Создание хранилища справочников
func NewLookupsStorage(db *Database) LookupsStorage {
	return &LookupDatabase{DB: db}
}

// добавление справочного значения с уникальным именем
func (s *LookupDatabase) addLookup(ctx context.Context, query string, name string) (*models.LookupData, error) {
	id := uuid.New().String()
	var insertedID string
	err := s.DB.Pool.QueryRow(ctx, query, id, name).Scan(&insertedID)

	if err == nil {
		return &models.LookupData{ID: insertedID, Name: name}, nil
	}

	// дубликат имени: ON CONFLICT DO NOTHING не вернул строку
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAlreadyExists
	}

	return nil, fmt.Errorf("failed to add lookup: %w", err)
}

func (s *LookupDatabase) getLookups(ctx context.Context, query string) ([]models.LookupData, error) {
	rows, err := s.DB.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get lookups: %w", err)
	}
	defer rows.Close()

	var lookups []models.LookupData
	for rows.Next() {
		var lookup models.LookupData
		if err := rows.Scan(&lookup.ID, &lookup.Name); err != nil {
			return lookups, fmt.Errorf("failed scan lookup data: %w", err)
		}
		lookups = append(lookups, lookup)
	}
	return lookups, rows.Err()
}

func (s *LookupDatabase) AddBilling(ctx context.Context, name string) (*models.LookupData, error) {
	return s.addLookup(ctx, InsertBilling, name)
}

func (s *LookupDatabase) GetBillings(ctx context.Context) ([]models.LookupData, error) {
	return s.getLookups(ctx, GetAllBillings)
}

func (s *LookupDatabase) AddSkup(ctx context.Context, name string) (*models.LookupData, error) {
	return s.addLookup(ctx, InsertSkup, name)
}

func (s *LookupDatabase) GetSkups(ctx context.Context) ([]models.LookupData, error) {
	return s.getLookups(ctx, GetAllSkups)
}
