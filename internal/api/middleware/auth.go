package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/glamnails/salon-gateway/internal/api/handlers"
)

// Logger is the logging surface the middleware needs.
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth gates admin routes behind a shared token, passed as
// "Authorization: Bearer <token>" or an X-Admin-Token header. From the
// handlers' perspective the result is an opaque boolean capability: either
// the caller is staff or the request never reaches them. Token issuance and
// real authentication live upstream.
func AdminAuth(token string, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" || !tokenMatches(r, token) {
				log.Warn("admin route %s %s rejected: missing or invalid token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tokenMatches(r *http.Request, token string) bool {
	presented := r.Header.Get("X-Admin-Token")
	if presented == "" {
		auth := r.Header.Get("Authorization")
		presented = strings.TrimPrefix(auth, "Bearer ")
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(token)) == 1
}
