package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы реф-процессов
const (
	RefStatusActive = "Актив"
	RefStatusClosed = "Закрито"
)

// RefProcessData - модель реф-процесса (возврата средств) из хранилища.
// Создаётся как копия посылки при переходе в статус "Доставлено".
type RefProcessData struct {
	ID                 string
	PackID             string
	PackName           string
	StoreName          string
	TrackNumber        string
	Comments           []string
	DropID             *string
	Status             string
	DropPayment        decimal.Decimal
	CarrierPayment     decimal.Decimal
	AdditionalExpenses decimal.Decimal
	BoxerExpenses      decimal.Decimal
	NetProfit          decimal.Decimal
	CreatedAt          time.Time
}

// RefFilters - фильтры выборки реф-процессов
type RefFilters struct {
	Status string
	DropID string
}

// RefPatch - типизированный частичный патч реф-процесса для хранилища
type RefPatch struct {
	Status             *string
	DropPayment        *decimal.Decimal
	CarrierPayment     *decimal.Decimal
	AdditionalExpenses *decimal.Decimal
	BoxerExpenses      *decimal.Decimal
	NetProfit          *decimal.Decimal
}

// RefUpdateRequest - модель обновления реф-процесса (статус и расходы)
type RefUpdateRequest struct {
	Status             *string `json:"status,omitempty"`
	DropPayment        *string `json:"drop_payment,omitempty"`
	CarrierPayment     *string `json:"carrier_payment,omitempty"`
	AdditionalExpenses *string `json:"additional_expenses,omitempty"`
	BoxerExpenses      *string `json:"boxer_expenses,omitempty"`
	NetProfit          *string `json:"net_profit,omitempty"`
}

// RefProcessResponse - модель реф-процесса для выдачи
type RefProcessResponse struct {
	ID                 string   `json:"id"`
	PackID             string   `json:"pack_id"`
	PackName           string   `json:"pack_name"`
	StoreName          string   `json:"store_name"`
	TrackNumber        string   `json:"track_number"`
	Comments           []string `json:"comments"`
	DropID             *string  `json:"drop_id,omitempty"`
	Status             string   `json:"status"`
	DropPayment        string   `json:"drop_payment"`
	CarrierPayment     string   `json:"carrier_payment"`
	AdditionalExpenses string   `json:"additional_expenses"`
	BoxerExpenses      string   `json:"boxer_expenses"`
	NetProfit          string   `json:"net_profit"`
	CreatedAt          string   `json:"created_at"`
}
