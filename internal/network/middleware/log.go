package middleware

import (
	"net/http"
	"time"

	"github.com/denmor86/packcrm/internal/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// LogHandle — логирование входящих HTTP-запросов.
// Кроме URI пишем шаблон маршрута chi: по нему запросы вида /api/packs/{id} группируются.
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		h.ServeHTTP(ww, r)

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		logger.Info("got incoming HTTP request",
			"method", r.Method,
			"route", route,
			"uri", r.RequestURI,
			"status", ww.Status(),
			"size", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
