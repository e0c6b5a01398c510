package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit — ограничение частоты входящих запросов.
// Единый лимит на процесс, без разбивки по клиентам.
func RateLimit(limit float64) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(limit), int(limit))
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}
