package middleware

import (
	"net/http"

	httputil "islatours/pkg/http"
)

// ClientAddress resolves the client IP once per request so rate limits and
// login throttling key on the same address.
func ClientAddress(trusted httputil.TrustedProxies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, httputil.WithClientIP(r, trusted.ClientIP(r)))
		})
	}
}
