package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArchiveData - неизменяемый снимок удалённой посылки
type ArchiveData struct {
	ID                    string
	OriginalPackID        string
	PackID                string
	StoreName             string
	Status                string
	Card                  string
	Amount                decimal.Decimal
	AmountWithoutDiscount decimal.Decimal
	Quantity              int
	Billing               *string
	Email                 string
	Password              *string
	ProductType           string
	TrackNumbers          []string
	Comments              []string
	DropID                *string
	AddressID             *string
	SkupID                *string
	OriginalCreatedAt     time.Time
	ArchivedAt            time.Time
}

// ArchiveResponse - модель архивной записи для выдачи
type ArchiveResponse struct {
	ID                string   `json:"id"`
	OriginalPackID    string   `json:"original_pack_id"`
	PackID            string   `json:"pack_id"`
	StoreName         string   `json:"store_name"`
	Status            string   `json:"status"`
	Card              string   `json:"card"`
	Amount            string   `json:"amount"`
	Quantity          int      `json:"quantity"`
	ProductType       string   `json:"product_type"`
	TrackNumbers      []string `json:"track_numbers"`
	Comments          []string `json:"comments"`
	OriginalCreatedAt string   `json:"original_created_at"`
	ArchivedAt        string   `json:"archived_at"`
}
