package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/denmor86/packcrm/internal/config"
	"github.com/denmor86/packcrm/internal/logger"
	"github.com/denmor86/packcrm/internal/models"
	"github.com/denmor86/packcrm/internal/services"
	"github.com/denmor86/packcrm/internal/storage"
	"github.com/denmor86/packcrm/internal/storage/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newPacksRouter(s services.PacksService) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/packs", ListPacksHandler(s))
	r.Post("/api/packs", CreatePackHandler(s))
	r.Patch("/api/packs/{id}", UpdatePackHandler(s))
	r.Patch("/api/packs/{id}/status", UpdatePackStatusHandler(s))
	r.Delete("/api/packs/{id}", DeletePackHandler(s))
	return r
}

func TestPacksHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	router := newPacksRouter(services.NewPacks(mockStorage))

	testCases := []struct {
		Name         string
		Method       string
		Target       string
		Body         string
		SetupMocks   func()
		ExpectedCode int
		ExpectedBody string
	}{
		{
			Name:   "List packs. 200 with JSON body #1",
			Method: http.MethodGet,
			Target: "/api/packs?store=zara",
			SetupMocks: func() {
				mockStorage.EXPECT().GetPacks(gomock.Any(), gomock.Any()).Return([]models.PackData{
					{ID: "id-1", PackID: "1V15", StoreName: "Zara", Status: models.PackStatusOrdered,
						Amount: decimal.NewFromInt(100), AmountWithoutDiscount: decimal.NewFromInt(120)},
				}, nil)
			},
			ExpectedCode: http.StatusOK,
		},
		{
			Name:         "Create pack. 400 on broken JSON #2",
			Method:       http.MethodPost,
			Target:       "/api/packs",
			Body:         `{"pack_id":`,
			SetupMocks:   func() {},
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Name:         "Create pack. 400 on bad card #3",
			Method:       http.MethodPost,
			Target:       "/api/packs",
			Body:         `{"pack_id":"1V15","store_name":"Zara","card":"12","amount":"100","amount_without_discount":"120","quantity":1,"product_type":"Шмот"}`,
			SetupMocks:   func() {},
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Name:   "Create pack. 201, password returned #4",
			Method: http.MethodPost,
			Target: "/api/packs",
			Body:   `{"pack_id":"1V15","store_name":"Zara","card":"4321","amount":"100","amount_without_discount":"120","quantity":1,"product_type":"Шмот","email":"drop@mail.com","password":"qwerty12"}`,
			SetupMocks: func() {
				mockStorage.EXPECT().AddPack(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, pack models.PackData) (*models.PackData, error) {
						pack.ID = "id-1"
						return &pack, nil
					})
			},
			ExpectedCode: http.StatusCreated,
			ExpectedBody: `"password":"qwerty12"`,
		},
		{
			Name:         "Update status. 422 on unknown status #5",
			Method:       http.MethodPatch,
			Target:       "/api/packs/id-1/status",
			Body:         `{"status":"Загублено"}`,
			SetupMocks:   func() {},
			ExpectedCode: http.StatusUnprocessableEntity,
		},
		{
			Name:   "Update status. 404 on missing pack #6",
			Method: http.MethodPatch,
			Target: "/api/packs/id-404/status",
			Body:   `{"status":"Відправлено"}`,
			SetupMocks: func() {
				mockStorage.EXPECT().UpdatePackStatus(gomock.Any(), "id-404", models.PackStatusShipped).Return(storage.ErrNotFound)
			},
			ExpectedCode: http.StatusNotFound,
		},
		{
			Name:   "Update status. 200 on delivered #7",
			Method: http.MethodPatch,
			Target: "/api/packs/id-1/status",
			Body:   `{"status":"Доставлено"}`,
			SetupMocks: func() {
				mockStorage.EXPECT().GetPack(gomock.Any(), "id-1").Return(&models.PackData{
					ID: "id-1", PackID: "1V15", StoreName: "Zara", TrackNumbers: []string{"TRK1"},
				}, nil)
				mockStorage.EXPECT().DeliverPack(gomock.Any(), "id-1", gomock.Any()).Return(nil)
			},
			ExpectedCode: http.StatusOK,
		},
		{
			Name:   "Update pack. 404 on missing pack #8",
			Method: http.MethodPatch,
			Target: "/api/packs/id-404",
			Body:   `{"store_name":"Nike"}`,
			SetupMocks: func() {
				mockStorage.EXPECT().UpdatePack(gomock.Any(), "id-404", gomock.Any()).Return(storage.ErrNotFound)
			},
			ExpectedCode: http.StatusNotFound,
		},
		{
			Name:   "Delete pack. 200 #9",
			Method: http.MethodDelete,
			Target: "/api/packs/id-1",
			SetupMocks: func() {
				mockStorage.EXPECT().GetPack(gomock.Any(), "id-1").Return(&models.PackData{
					ID: "id-1", PackID: "1V15", StoreName: "Zara",
				}, nil)
				mockStorage.EXPECT().ArchivePack(gomock.Any(), "id-1", gomock.Any()).Return(nil)
			},
			ExpectedCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			request := httptest.NewRequest(tc.Method, tc.Target, strings.NewReader(tc.Body))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tc.ExpectedCode, recorder.Code)
			if tc.ExpectedBody != "" {
				assert.Contains(t, recorder.Body.String(), tc.ExpectedBody)
			}
			if recorder.Code == http.StatusOK && tc.Method == http.MethodGet {
				assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
				assert.Contains(t, recorder.Body.String(), "1V15")
			}
		})
	}
}
