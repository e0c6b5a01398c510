package services

import (
	"strings"

	"github.com/denmor86/packcrm/internal/models"
)

// ApplySearch - клиентское уточнение выборки посылок: подстрока без учёта регистра
// по номеру, магазину, карте и статусу. Только убирает строки, порядок не меняет.
func ApplySearch(packs []models.PackData, search string) []models.PackData {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return packs
	}

	filtered := make([]models.PackData, 0, len(packs))
	for _, pack := range packs {
		if MatchesSearch(pack, query) {
			filtered = append(filtered, pack)
		}
	}
	return filtered
}

// MatchesSearch - проверка посылки на совпадение с поисковой строкой (в нижнем регистре)
func MatchesSearch(pack models.PackData, query string) bool {
	return strings.Contains(strings.ToLower(pack.PackID), query) ||
		strings.Contains(strings.ToLower(pack.StoreName), query) ||
		strings.Contains(strings.ToLower(pack.Card), query) ||
		strings.Contains(strings.ToLower(pack.Status), query)
}
