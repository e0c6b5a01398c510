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

func TestLookupsService_AddDrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	lookups := NewLookups(mockStorage)

	testCases := []struct {
		TestName      string
		Request       models.DropRequest
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Error. Duplicate name #1",
			Request:  models.DropRequest{Name: "Вася", Geo: "Польша"},
			SetupMocks: func() {
				mockStorage.EXPECT().AddDrop(gomock.Any(), "Вася", "Польша").Return(nil, storage.ErrAlreadyExists)
			},
			ExpectedError: ErrDuplicateName,
		},
		{
			TestName: "Error. Storage failure #2",
			Request:  models.DropRequest{Name: "Петя", Geo: "Германия"},
			SetupMocks: func() {
				mockStorage.EXPECT().AddDrop(gomock.Any(), "Петя", "Германия").Return(nil, errors.New("failed to add drop"))
			},
			ExpectedError: errors.New("failed to add drop"),
		},
		{
			TestName: "Success. #3",
			Request:  models.DropRequest{Name: "Коля", Geo: "Чехия"},
			SetupMocks: func() {
				mockStorage.EXPECT().AddDrop(gomock.Any(), "Коля", "Чехия").Return(
					&models.DropData{ID: "id-1", Name: "Коля", Geo: "Чехия"}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := lookups.AddDrop(ctx, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			}
		})
	}
}

func TestLookupsService_AddAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	lookups := NewLookups(mockStorage)

	request := models.AddressRequest{Geo: "Польша", DeliveryMethod: "InPost", Address: "Paczkomat WAW01"}

	testCases := []struct {
		TestName      string
		DropID        string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Error. Drop not found #1",
			DropID:   "id-404",
			SetupMocks: func() {
				mockStorage.EXPECT().AddAddress(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			ExpectedError: ErrDropNotFound,
		},
		{
			TestName: "Success. #2",
			DropID:   "id-1",
			SetupMocks: func() {
				mockStorage.EXPECT().AddAddress(gomock.Any(), models.AddressData{
					DropID: "id-1", Geo: "Польша", DeliveryMethod: "InPost", Address: "Paczkomat WAW01",
				}).Return(&models.AddressData{ID: "addr-1", DropID: "id-1"}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := lookups.AddAddress(ctx, tc.DropID, request)

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

func TestLookupsService_AddBilling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	lookups := NewLookups(mockStorage)

	testCases := []struct {
		TestName      string
		Name          string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Error. Duplicate name #1",
			Name:     "Wise",
			SetupMocks: func() {
				mockStorage.EXPECT().AddBilling(gomock.Any(), "Wise").Return(nil, storage.ErrAlreadyExists)
			},
			ExpectedError: ErrDuplicateName,
		},
		{
			TestName: "Success. #2",
			Name:     "Payoneer",
			SetupMocks: func() {
				mockStorage.EXPECT().AddBilling(gomock.Any(), "Payoneer").Return(
					&models.LookupData{ID: "id-1", Name: "Payoneer"}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := lookups.AddBilling(ctx, tc.Name)

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
