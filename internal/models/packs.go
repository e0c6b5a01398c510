package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы посылок (упорядочены по жизненному циклу)
const (
	PackStatusOrdered   = "Замовлено"
	PackStatusShipped   = "Відправлено"
	PackStatusArrived   = "Прибув"
	PackStatusReturning = "Повертається"
	PackStatusDelivered = "Доставлено"
)

// Типы товаров
const (
	ProductTypeTech    = "Техніка"
	ProductTypeClothes = "Шмот"
)

// PackStatuses - допустимые статусы посылки в порядке жизненного цикла
var PackStatuses = []string{
	PackStatusOrdered,
	PackStatusShipped,
	PackStatusArrived,
	PackStatusReturning,
	PackStatusDelivered,
}

// PackData - модель посылки из хранилища
type PackData struct {
	ID                    string
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
	CreatedAt             time.Time
	DeliveredAt           *time.Time
}

// PackFilters - фильтры выборки посылок
type PackFilters struct {
	DropID        string
	Status        string
	Billing       string
	Skup          string
	Store         string
	Search        string
	ShowReturning bool
}

// PackRequest - модель создания посылки, приходит извне
type PackRequest struct {
	PackID                string   `json:"pack_id" validate:"required"`
	StoreName             string   `json:"store_name" validate:"required"`
	Card                  string   `json:"card" validate:"required"`
	Amount                string   `json:"amount" validate:"required"`
	AmountWithoutDiscount string   `json:"amount_without_discount" validate:"required"`
	Quantity              int      `json:"quantity" validate:"required,gt=0"`
	Billing               *string  `json:"billing,omitempty"`
	Email                 string   `json:"email"`
	Password              *string  `json:"password,omitempty"`
	ProductType           string   `json:"product_type" validate:"required"`
	DropID                *string  `json:"drop_id,omitempty"`
	AddressID             *string  `json:"address_id,omitempty"`
	SkupID                *string  `json:"skup_id,omitempty"`
}

// PackUpdateRequest - модель частичного обновления полей посылки
type PackUpdateRequest struct {
	StoreName             *string  `json:"store_name,omitempty"`
	Card                  *string  `json:"card,omitempty"`
	Amount                *string  `json:"amount,omitempty"`
	AmountWithoutDiscount *string  `json:"amount_without_discount,omitempty"`
	Quantity              *int     `json:"quantity,omitempty"`
	Billing               *string  `json:"billing,omitempty"`
	Email                 *string  `json:"email,omitempty"`
	Password              *string  `json:"password,omitempty"`
	ProductType           *string  `json:"product_type,omitempty"`
	TrackNumbers          []string `json:"track_numbers,omitempty"`
	Comments              []string `json:"comments,omitempty"`
	DropID                *string  `json:"drop_id,omitempty"`
	AddressID             *string  `json:"address_id,omitempty"`
	SkupID                *string  `json:"skup_id,omitempty"`
}

// PackPatch - типизированный частичный патч полей посылки для хранилища
type PackPatch struct {
	StoreName             *string
	Card                  *string
	Amount                *decimal.Decimal
	AmountWithoutDiscount *decimal.Decimal
	Quantity              *int
	Billing               *string
	Email                 *string
	Password              *string
	ProductType           *string
	TrackNumbers          []string
	Comments              []string
	DropID                *string
	AddressID             *string
	SkupID                *string
}

// PackStatusRequest - модель смены статуса посылки
type PackStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PackResponse - модель посылки для выдачи
type PackResponse struct {
	ID                    string   `json:"id"`
	PackID                string   `json:"pack_id"`
	StoreName             string   `json:"store_name"`
	Status                string   `json:"status"`
	Card                  string   `json:"card"`
	Amount                string   `json:"amount"`
	AmountWithoutDiscount string   `json:"amount_without_discount"`
	Quantity              int      `json:"quantity"`
	Billing               *string  `json:"billing,omitempty"`
	Email                 string   `json:"email"`
	Password              *string  `json:"password,omitempty"`
	ProductType           string   `json:"product_type"`
	TrackNumbers          []string `json:"track_numbers"`
	Comments              []string `json:"comments"`
	DropID                *string  `json:"drop_id,omitempty"`
	AddressID             *string  `json:"address_id,omitempty"`
	SkupID                *string  `json:"skup_id,omitempty"`
	CreatedAt             string   `json:"created_at"`
	DeliveredAt           *string  `json:"delivered_at,omitempty"`
}
