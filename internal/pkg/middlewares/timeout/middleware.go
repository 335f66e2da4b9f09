package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает каждый запрос общим таймаутом.
// Родительский контекст запроса приходит из BaseContext сервера.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
