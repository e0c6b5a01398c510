package models

// DropData - модель дропа (получателя) из хранилища
type DropData struct {
	ID   string
	Name string
	Geo  string
}

// AddressData - модель адреса доставки, принадлежит дропу
type AddressData struct {
	ID             string
	DropID         string
	Geo            string
	DeliveryMethod string
	Address        string
}

// DropRequest - модель создания дропа, приходит извне
type DropRequest struct {
	Name string `json:"name" validate:"required"`
	Geo  string `json:"geo" validate:"required"`
}

// AddressRequest - модель создания адреса для дропа
type AddressRequest struct {
	Geo            string `json:"geo" validate:"required"`
	DeliveryMethod string `json:"delivery_method" validate:"required"`
	Address        string `json:"address" validate:"required"`
}

// DropResponse - модель дропа для выдачи
type DropResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Geo  string `json:"geo"`
}

// AddressResponse - модель адреса для выдачи
type AddressResponse struct {
	ID             string `json:"id"`
	DropID         string `json:"drop_id"`
	Geo            string `json:"geo"`
	DeliveryMethod string `json:"delivery_method"`
	Address        string `json:"address"`
}
