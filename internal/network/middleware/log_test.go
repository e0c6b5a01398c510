package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/denmor86/packcrm/internal/config"
	"github.com/denmor86/packcrm/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestLogHandle(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	r := chi.NewRouter()
	r.Use(LogHandle)
	r.Get("/api/packs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("pack"))
	})

	request := httptest.NewRequest(http.MethodGet, "/api/packs/id-1", nil)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, request)

	// статус и тело проходят через обёртку без изменений
	assert.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Equal(t, "pack", recorder.Body.String())
}
