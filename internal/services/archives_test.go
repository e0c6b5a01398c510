package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/packcrm/internal/config"
	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func TestArchivesService_CleanupOldArchives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	archives := NewArchives(mockStorage)
	retention := 180 * 24 * time.Hour

	testCases := []struct {
		TestName        string
		SetupMocks      func()
		ExpectedError   bool
		ExpectedDeleted int64
	}{
		{
			TestName: "Error. Storage failure #1",
			SetupMocks: func() {
				mockStorage.EXPECT().DeleteArchivesBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("failed to delete archives"))
			},
			ExpectedError: true,
		},
		{
			TestName: "Success. Cutoff respects retention #2",
			SetupMocks: func() {
				mockStorage.EXPECT().DeleteArchivesBefore(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, cutoff time.Time) (int64, error) {
						expected := time.Now().Add(-retention)
						if cutoff.Before(expected.Add(-time.Minute)) || cutoff.After(expected.Add(time.Minute)) {
							t.Errorf("Expected cutoff near %v, got %v", expected, cutoff)
						}
						return 3, nil
					})
			},
			ExpectedError:   false,
			ExpectedDeleted: 3,
		},
		{
			TestName: "Success. Nothing to delete #3",
			SetupMocks: func() {
				mockStorage.EXPECT().DeleteArchivesBefore(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			ExpectedError:   false,
			ExpectedDeleted: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			deleted, err := archives.CleanupOldArchives(ctx, retention)

			if err != nil && !tc.ExpectedError {
				t.Errorf("Expected no error, got '%v'", err)
			} else if err == nil && tc.ExpectedError {
				t.Errorf("Expected error, got none")
			}
			if err == nil && deleted != tc.ExpectedDeleted {
				t.Errorf("Expected %d deleted, got %d", tc.ExpectedDeleted, deleted)
			}
		})
	}
}
