package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/packcrm/internal/config"
	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/models"
	"github.com/denmor86/packcrm/internal/storage"
	"github.com/denmor86/packcrm/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestRefsService_UpdateRefProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	refs := NewRefs(mockStorage)

	testCases := []struct {
		TestName      string
		RefID         string
		Request       models.RefUpdateRequest
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName:      "Error. Unknown status #1",
			RefID:         "id-1",
			Request:       models.RefUpdateRequest{Status: strPtr("Відкрито")},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidRefUpdate,
		},
		{
			TestName:      "Error. Invalid drop payment #2",
			RefID:         "id-1",
			Request:       models.RefUpdateRequest{DropPayment: strPtr("ten")},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidRefUpdate,
		},
		{
			TestName: "Error. Ref process not found #3",
			RefID:    "id-404",
			Request:  models.RefUpdateRequest{Status: strPtr(models.RefStatusClosed)},
			SetupMocks: func() {
				mockStorage.EXPECT().UpdateRefProcess(gomock.Any(), "id-404", gomock.Any()).Return(storage.ErrNotFound)
			},
			ExpectedError: ErrRefNotFound,
		},
		{
			TestName: "Success. Close with expenses #4",
			RefID:    "id-1",
			Request: models.RefUpdateRequest{
				Status:      strPtr(models.RefStatusClosed),
				DropPayment: strPtr("15.50"),
				NetProfit:   strPtr("84.50"),
			},
			SetupMocks: func() {
				mockStorage.EXPECT().UpdateRefProcess(gomock.Any(), "id-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, patch models.RefPatch) error {
						if patch.Status == nil || *patch.Status != models.RefStatusClosed {
							t.Errorf("Expected status %q in patch", models.RefStatusClosed)
						}
						if patch.DropPayment == nil || patch.DropPayment.String() != "15.5" {
							t.Errorf("Expected drop payment 15.5 in patch")
						}
						if patch.NetProfit == nil || patch.NetProfit.String() != "84.5" {
							t.Errorf("Expected net profit 84.5 in patch")
						}
						if patch.CarrierPayment != nil || patch.AdditionalExpenses != nil || patch.BoxerExpenses != nil {
							t.Errorf("Expected untouched fields to stay nil")
						}
						return nil
					})
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := refs.UpdateRefProcess(ctx, tc.RefID, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestRefsService_ListRefProcesses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	refs := NewRefs(mockStorage)

	testCases := []struct {
		TestName      string
		Filters       models.RefFilters
		SetupMocks    func()
		ExpectedError error
		ExpectedCount int
	}{
		{
			TestName: "Error. Storage failure #1",
			Filters:  models.RefFilters{},
			SetupMocks: func() {
				mockStorage.EXPECT().GetRefProcesses(gomock.Any(), gomock.Any()).Return(nil, errors.New("failed to get refs"))
			},
			ExpectedError: errors.New("failed to get refs"),
		},
		{
			TestName: "Success. Filter by status #2",
			Filters:  models.RefFilters{Status: models.RefStatusActive},
			SetupMocks: func() {
				mockStorage.EXPECT().GetRefProcesses(gomock.Any(), models.RefFilters{Status: models.RefStatusActive}).Return(
					[]models.RefProcessData{{ID: "1", Status: models.RefStatusActive}}, nil)
			},
			ExpectedError: nil,
			ExpectedCount: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			result, err := refs.ListRefProcesses(ctx, tc.Filters)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			}
			if err == nil && len(result) != tc.ExpectedCount {
				t.Errorf("Expected %d refs, got %d", tc.ExpectedCount, len(result))
			}
		})
	}
}
