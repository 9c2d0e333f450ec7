package controller

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyHeader is the header carrying the administrative API key.
const APIKeyHeader = "X-API-Key"

// WithAPIKey returns a middleware that only lets requests through when they
// carry the expected key in the X-API-Key header. An empty key rejects every
// request so an unconfigured deployment never exposes admin routes.
func WithAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(APIKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"code":"UNAUTHORIZED","message":"invalid api key"}`))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
