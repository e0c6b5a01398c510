package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/denmor86/packcrm/internal/models"
)

const (
	GetAllArchives = `SELECT id, original_pack_id, pack_id, store_name, status, card,
							 amount, amount_without_discount, quantity, billing, email, password,
							 product_type, track_numbers, comments, drop_id, address_id, skup_id,
							 original_created_at, archived_at
					  FROM PACK_ARCHIVE ORDER BY archived_at DESC;`

	DeleteOldArchives = `DELETE FROM PACK_ARCHIVE WHERE archived_at < $1;`
)

type ArchiveDatabase struct {
	DB *Database
}

// Создание хранилища архива посылок
func NewArchivesStorage(db *Database) ArchivesStorage {
	return &ArchiveDatabase{DB: db}
}

func (s *ArchiveDatabase) GetArchives(ctx context.Context) ([]models.ArchiveData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetAllArchives)
	if err != nil {
		return nil, fmt.Errorf("failed to get archives: %w", err)
	}
	defer rows.Close()

	var archives []models.ArchiveData
	for rows.Next() {
		var archive models.ArchiveData
		err := rows.Scan(
			&archive.ID,
			&archive.OriginalPackID,
			&archive.PackID,
			&archive.StoreName,
			&archive.Status,
			&archive.Card,
			&archive.Amount,
			&archive.AmountWithoutDiscount,
			&archive.Quantity,
			&archive.Billing,
			&archive.Email,
			&archive.Password,
			&archive.ProductType,
			&archive.TrackNumbers,
			&archive.Comments,
			&archive.DropID,
			&archive.AddressID,
			&archive.SkupID,
			&archive.OriginalCreatedAt,
			&archive.ArchivedAt,
		)
		if err != nil {
			return archives, fmt.Errorf("failed scan archive data: %w", err)
		}
		archives = append(archives, archive)
	}
	return archives, rows.Err()
}

// DeleteArchivesBefore - удаление архивных записей старше границы хранения
func (s *ArchiveDatabase) DeleteArchivesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.DB.Pool.Exec(ctx, DeleteOldArchives, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old archives: %w", err)
	}
	return tag.RowsAffected(), nil
}
