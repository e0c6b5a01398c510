package validators

import (
	"fmt"

	"github.com/denmor86/packcrm/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CheckCard проверяет номер карты: ровно 4 цифры '0'-'9'.
// Длина считается в рунах, а не в байтах.
func CheckCard(card string) bool {
	count := 0
	for _, r := range card {
		if r < '0' || r > '9' {
			return false
		}
		count++
	}
	return count == 4
}

// CheckStatus проверяет принадлежность статуса фиксированному набору
func CheckStatus(status string) bool {
	for _, known := range models.PackStatuses {
		if status == known {
			return true
		}
	}
	return false
}

// CheckProductType проверяет тип товара
func CheckProductType(productType string) bool {
	return productType == models.ProductTypeTech || productType == models.ProductTypeClothes
}

// ValidatePackRequest - проверка запроса на создание посылки
func ValidatePackRequest(request models.PackRequest) error {
	if err := validate.Struct(request); err != nil {
		return fmt.Errorf("missing required fields: %w", err)
	}
	if !CheckCard(request.Card) {
		return fmt.Errorf("card must be exactly 4 digits")
	}
	if !CheckProductType(request.ProductType) {
		return fmt.Errorf("unknown product type %q", request.ProductType)
	}
	return nil
}
