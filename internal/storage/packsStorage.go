package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	PackColumns = `id, pack_id, store_name, status, card, amount, amount_without_discount, quantity,
				   billing, email, password, product_type, track_numbers, comments,
				   drop_id, address_id, skup_id, created_at, delivered_at`

	GetPackByID = `SELECT id, pack_id, store_name, status, card, amount, amount_without_discount, quantity,
						  billing, email, password, product_type, track_numbers, comments,
						  drop_id, address_id, skup_id, created_at, delivered_at
				   FROM PACKS WHERE id=$1;`

	InsertPack = `INSERT INTO PACKS (id, pack_id, store_name, status, card, amount, amount_without_discount, quantity,
									 billing, email, password, product_type, track_numbers, comments,
									 drop_id, address_id, skup_id, created_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())
				  RETURNING created_at;`

	UpdatePackStatusOnly = `UPDATE PACKS
							SET status = $1,
							    delivered_at = NULL
							WHERE id = $2;`

	UpdatePackDelivered = `UPDATE PACKS
						   SET status = $1,
						       delivered_at = NOW()
						   WHERE id = $2;`

	InsertRefProcess = `INSERT INTO REF_PROCESSES (id, pack_id, pack_name, store_name, track_number, comments, drop_id, status)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	InsertArchive = `INSERT INTO PACK_ARCHIVE (id, original_pack_id, pack_id, store_name, status, card,
											   amount, amount_without_discount, quantity, billing, email, password,
											   product_type, track_numbers, comments, drop_id, address_id, skup_id,
											   original_created_at, archived_at)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW());`

	DeletePackByID = `DELETE FROM PACKS WHERE id = $1;`
)

type PackDatabase struct {
	DB *Database
}

// Создание хранилища посылок
func NewPacksStorage(db *Database) PacksStorage {
	return &PackDatabase{DB: db}
}

func scanPack(row pgx.Row) (*models.PackData, error) {
	var pack models.PackData
	err := row.Scan(
		&pack.ID,
		&pack.PackID,
		&pack.StoreName,
		&pack.Status,
		&pack.Card,
		&pack.Amount,
		&pack.AmountWithoutDiscount,
		&pack.Quantity,
		&pack.Billing,
		&pack.Email,
		&pack.Password,
		&pack.ProductType,
		&pack.TrackNumbers,
		&pack.Comments,
		&pack.DropID,
		&pack.AddressID,
		&pack.SkupID,
		&pack.CreatedAt,
		&pack.DeliveredAt,
	)
	if err != nil {
		return nil, err
	}
	return &pack, nil
}

func (s *PackDatabase) GetPack(ctx context.Context, id string) (*models.PackData, error) {
	pack, err := scanPack(s.DB.Pool.QueryRow(ctx, GetPackByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pack: %w", err)
	}
	return pack, nil
}

// BuildPackPredicate - построение условия выборки посылок из фильтров.
// Посылки в статусе "Доставлено" исключаются всегда, "Повертається" - если не запрошены явно.
func BuildPackPredicate(filters models.PackFilters) (string, []any) {
	conditions := []string{`status <> '` + models.PackStatusDelivered + `'`}
	args := make([]any, 0, 5)

	if !filters.ShowReturning {
		conditions = append(conditions, `status <> '`+models.PackStatusReturning+`'`)
	}
	if filters.Status != "" {
		args = append(args, filters.Status)
		conditions = append(conditions, `status = $`+strconv.Itoa(len(args)))
	}
	if filters.DropID != "" {
		args = append(args, filters.DropID)
		conditions = append(conditions, `drop_id = $`+strconv.Itoa(len(args)))
	}
	if filters.Billing != "" {
		args = append(args, filters.Billing)
		conditions = append(conditions, `billing = $`+strconv.Itoa(len(args)))
	}
	if filters.Skup != "" {
		args = append(args, filters.Skup)
		conditions = append(conditions, `skup_id = $`+strconv.Itoa(len(args)))
	}
	if filters.Store != "" {
		args = append(args, "%"+filters.Store+"%")
		conditions = append(conditions, `store_name ILIKE $`+strconv.Itoa(len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

func (s *PackDatabase) GetPacks(ctx context.Context, filters models.PackFilters) ([]models.PackData, error) {
	predicate, args := BuildPackPredicate(filters)
	query := `SELECT ` + PackColumns + ` FROM PACKS WHERE ` + predicate + ` ORDER BY created_at DESC;`

	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get packs: %w", err)
	}
	defer rows.Close()

	var packs []models.PackData
	for rows.Next() {
		pack, err := scanPack(rows)
		if err != nil {
			return packs, fmt.Errorf("failed scan pack data: %w", err)
		}
		packs = append(packs, *pack)
	}
	return packs, rows.Err()
}

func (s *PackDatabase) AddPack(ctx context.Context, pack models.PackData) (*models.PackData, error) {
	pack.ID = uuid.New().String()
	err := s.DB.Pool.QueryRow(ctx, InsertPack,
		pack.ID,
		pack.PackID,
		pack.StoreName,
		pack.Status,
		pack.Card,
		pack.Amount,
		pack.AmountWithoutDiscount,
		pack.Quantity,
		pack.Billing,
		pack.Email,
		pack.Password,
		pack.ProductType,
		pack.TrackNumbers,
		pack.Comments,
		pack.DropID,
		pack.AddressID,
		pack.SkupID,
	).Scan(&pack.CreatedAt)

	if err == nil {
		return &pack, nil
	}

	// Проверяем именно нарушение уникальности
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, ErrAlreadyExists
	}

	// Все остальные ошибки
	return nil, fmt.Errorf("failed to add pack: %w", err)
}

// UpdatePack - частичное обновление полей посылки, без побочных эффектов
func (s *PackDatabase) UpdatePack(ctx context.Context, id string, patch models.PackPatch) error {
	var (
		set  []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, column+` = $`+strconv.Itoa(len(args)))
	}

	if patch.StoreName != nil {
		add("store_name", *patch.StoreName)
	}
	if patch.Card != nil {
		add("card", *patch.Card)
	}
	if patch.Amount != nil {
		add("amount", *patch.Amount)
	}
	if patch.AmountWithoutDiscount != nil {
		add("amount_without_discount", *patch.AmountWithoutDiscount)
	}
	if patch.Quantity != nil {
		add("quantity", *patch.Quantity)
	}
	if patch.Billing != nil {
		add("billing", *patch.Billing)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Password != nil {
		add("password", *patch.Password)
	}
	if patch.ProductType != nil {
		add("product_type", *patch.ProductType)
	}
	if patch.TrackNumbers != nil {
		add("track_numbers", patch.TrackNumbers)
	}
	if patch.Comments != nil {
		add("comments", patch.Comments)
	}
	if patch.DropID != nil {
		add("drop_id", *patch.DropID)
	}
	if patch.AddressID != nil {
		add("address_id", *patch.AddressID)
	}
	if patch.SkupID != nil {
		add("skup_id", *patch.SkupID)
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := `UPDATE PACKS SET ` + strings.Join(set, ", ") + ` WHERE id = $` + strconv.Itoa(len(args)) + `;`

	tag, err := s.DB.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update pack: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PackDatabase) UpdatePackStatus(ctx context.Context, id string, status string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdatePackStatusOnly, status, id)
	if err != nil {
		return fmt.Errorf("failed to update pack status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeliverPack - перевод посылки в "Доставлено" и создание реф-процесса в одной транзакции
func (s *PackDatabase) DeliverPack(ctx context.Context, id string, ref models.RefProcessData) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("DeliverPack. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// Сначала создаём реф-процесс: посылка не должна сменить статус без записи о возврате
	_, err = tx.Exec(ctx, InsertRefProcess,
		uuid.New().String(),
		ref.PackID,
		ref.PackName,
		ref.StoreName,
		ref.TrackNumber,
		ref.Comments,
		ref.DropID,
		ref.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ref process: %w", err)
	}

	// Обновляем статус посылки и фиксируем время доставки
	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx, UpdatePackDelivered, models.PackStatusDelivered, id)
	if err != nil {
		return fmt.Errorf("failed to update pack status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrNotFound
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("DeliverPack. Commit failed: %w", err)
	}

	return nil
}

// ArchivePack - снимок посылки в архив и удаление исходной строки в одной транзакции.
// Порядок "сначала архив, потом удаление" гарантирует, что посылка не потеряется без копии.
func (s *PackDatabase) ArchivePack(ctx context.Context, id string, snapshot models.ArchiveData) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("ArchivePack. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	_, err = tx.Exec(ctx, InsertArchive,
		uuid.New().String(),
		snapshot.OriginalPackID,
		snapshot.PackID,
		snapshot.StoreName,
		snapshot.Status,
		snapshot.Card,
		snapshot.Amount,
		snapshot.AmountWithoutDiscount,
		snapshot.Quantity,
		snapshot.Billing,
		snapshot.Email,
		snapshot.Password,
		snapshot.ProductType,
		snapshot.TrackNumbers,
		snapshot.Comments,
		snapshot.DropID,
		snapshot.AddressID,
		snapshot.SkupID,
		snapshot.OriginalCreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert archive: %w", err)
	}

	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx, DeletePackByID, id)
	if err != nil {
		return fmt.Errorf("failed to delete pack: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrNotFound
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("ArchivePack. Commit failed: %w", err)
	}

	return nil
}
