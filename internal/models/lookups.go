package models

// LookupData - модель справочной сущности (биллинг, скуп) из хранилища
type LookupData struct {
	ID   string
	Name string
}

// LookupRequest - модель добавления справочного значения, приходит извне
type LookupRequest struct {
	Name string `json:"name" validate:"required"`
}

// LookupResponse - модель справочного значения для выдачи
type LookupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
