package services

import (
	"testing"

	"github.com/denmor86/packcrm/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestApplySearch(t *testing.T) {
	packs := []models.PackData{
		{ID: "1", PackID: "1V15", StoreName: "Zara", Card: "4321", Status: models.PackStatusOrdered},
		{ID: "2", PackID: "2V7", StoreName: "Nike", Card: "1111", Status: models.PackStatusShipped},
		{ID: "3", PackID: "15V3", StoreName: "Asos", Card: "2215", Status: models.PackStatusArrived},
	}

	testCases := []struct {
		Name     string
		Search   string
		Expected []models.PackData
	}{
		{
			Name:     "Empty search keeps everything #1",
			Search:   "",
			Expected: packs,
		},
		{
			Name:     "Whitespace only keeps everything #2",
			Search:   "   ",
			Expected: packs,
		},
		{
			Name:     "Case insensitive store match #3",
			Search:   "ZARA",
			Expected: []models.PackData{packs[0]},
		},
		{
			Name:     "Substring matches several fields, order kept #4",
			Search:   "15",
			Expected: []models.PackData{packs[0], packs[2]},
		},
		{
			Name:     "Status match #5",
			Search:   "відправлено",
			Expected: []models.PackData{packs[1]},
		},
		{
			Name:     "No match #6",
			Search:   "missing",
			Expected: []models.PackData{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			result := ApplySearch(packs, tc.Search)
			if diff := cmp.Diff(tc.Expected, result); diff != "" {
				t.Errorf("filtered packs mismatch:\n %s", diff)
			}

			// повторное применение не меняет результат
			again := ApplySearch(result, tc.Search)
			if diff := cmp.Diff(result, again); diff != "" {
				t.Errorf("search is not idempotent:\n %s", diff)
			}
		})
	}
}
