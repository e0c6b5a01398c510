package storage

import (
	"strings"
	"testing"

	"github.com/denmor86/packcrm/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestBuildPackPredicate(t *testing.T) {
	testCases := []struct {
		Name              string
		Filters           models.PackFilters
		ExpectedPredicate string
		ExpectedArgs      []any
	}{
		{
			Name:              "Empty filters exclude delivered and returning #1",
			Filters:           models.PackFilters{},
			ExpectedPredicate: `status <> 'Доставлено' AND status <> 'Повертається'`,
			ExpectedArgs:      []any{},
		},
		{
			Name:              "Show returning drops the second exclusion #2",
			Filters:           models.PackFilters{ShowReturning: true},
			ExpectedPredicate: `status <> 'Доставлено'`,
			ExpectedArgs:      []any{},
		},
		{
			Name:              "Status filter #3",
			Filters:           models.PackFilters{Status: models.PackStatusShipped},
			ExpectedPredicate: `status <> 'Доставлено' AND status <> 'Повертається' AND status = $1`,
			ExpectedArgs:      []any{models.PackStatusShipped},
		},
		{
			Name: "All filters keep argument numbering #4",
			Filters: models.PackFilters{
				Status:        models.PackStatusOrdered,
				DropID:        "drop-1",
				Billing:       "Wise",
				Skup:          "skup-1",
				Store:         "Zara",
				ShowReturning: true,
			},
			ExpectedPredicate: `status <> 'Доставлено' AND status = $1 AND drop_id = $2 AND billing = $3 AND skup_id = $4 AND store_name ILIKE $5`,
			ExpectedArgs:      []any{models.PackStatusOrdered, "drop-1", "Wise", "skup-1", "%Zara%"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			predicate, args := BuildPackPredicate(tc.Filters)
			if predicate != tc.ExpectedPredicate {
				t.Errorf("predicate mismatch:\n got:      %s\n expected: %s", predicate, tc.ExpectedPredicate)
			}
			if diff := cmp.Diff(tc.ExpectedArgs, args); diff != "" {
				t.Errorf("args mismatch:\n %s", diff)
			}
			// доставленные посылки не попадают в выборку ни при каких фильтрах
			if !strings.Contains(predicate, `status <> 'Доставлено'`) {
				t.Errorf("Expected delivered exclusion in predicate")
			}
		})
	}
}
