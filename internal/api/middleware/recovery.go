package middleware

import (
	"net/http"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
)

// RecoveryLogger is the logging surface the recovery middleware needs.
type RecoveryLogger interface {
	Error(format string, v ...interface{})
}

// Recovery turns panics into a JSON 500. A failure must never surface as a
// blank response to the caller.
func Recovery(log RecoveryLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic handling %s %s: %v", r.Method, r.URL.Path, rec)
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
