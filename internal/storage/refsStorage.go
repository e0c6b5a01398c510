package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/denmor86/packcrm/internal/models"
)

const (
	GetRefs = `SELECT id, pack_id, pack_name, store_name, track_number, comments, drop_id, status,
					  drop_payment, carrier_payment, additional_expenses, boxer_expenses, net_profit, created_at
			   FROM REF_PROCESSES`
)

type RefDatabase struct {
	DB *Database
}

// Создание хранилища реф-процессов
func NewRefsStorage(db *Database) RefsStorage {
	return &RefDatabase{DB: db}
}

func (s *RefDatabase) GetRefProcesses(ctx context.Context, filters models.RefFilters) ([]models.RefProcessData, error) {
	var (
		conditions []string
		args       []any
	)
	if filters.Status != "" {
		args = append(args, filters.Status)
		conditions = append(conditions, `status = $`+strconv.Itoa(len(args)))
	}
	if filters.DropID != "" {
		args = append(args, filters.DropID)
		conditions = append(conditions, `drop_id = $`+strconv.Itoa(len(args)))
	}

	query := GetRefs
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get ref processes: %w", err)
	}
	defer rows.Close()

	var refs []models.RefProcessData
	for rows.Next() {
		var ref models.RefProcessData
		err := rows.Scan(
			&ref.ID,
			&ref.PackID,
			&ref.PackName,
			&ref.StoreName,
			&ref.TrackNumber,
			&ref.Comments,
			&ref.DropID,
			&ref.Status,
			&ref.DropPayment,
			&ref.CarrierPayment,
			&ref.AdditionalExpenses,
			&ref.BoxerExpenses,
			&ref.NetProfit,
			&ref.CreatedAt,
		)
		if err != nil {
			return refs, fmt.Errorf("failed scan ref process data: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// UpdateRefProcess - частичное обновление статуса и финансовых полей реф-процесса
func (s *RefDatabase) UpdateRefProcess(ctx context.Context, id string, patch models.RefPatch) error {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, column+` = $`+strconv.Itoa(len(args)))
	}

	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.DropPayment != nil {
		add("drop_payment", *patch.DropPayment)
	}
	if patch.CarrierPayment != nil {
		add("carrier_payment", *patch.CarrierPayment)
	}
	if patch.AdditionalExpenses != nil {
		add("additional_expenses", *patch.AdditionalExpenses)
	}
	if patch.BoxerExpenses != nil {
		add("boxer_expenses", *patch.BoxerExpenses)
	}
	if patch.NetProfit != nil {
		add("net_profit", *patch.NetProfit)
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := `UPDATE REF_PROCESSES SET ` + strings.Join(set, ", ") + ` WHERE id = $` + strconv.Itoa(len(args)) + `;`

	tag, err := s.DB.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update ref process: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
