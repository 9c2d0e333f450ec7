package controller

import (
	"net/http"
	"presell/pkg/logger"
	"runtime/debug"

	"go.uber.org/zap"
)

// WithRecover returns a middleware that turns handler panics into a 500
// response. The panic value and stack are logged, never sent to the client.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint, err113
				panic(p)
			}

			logger.Error(r.Context(), "recovered from handler panic",
				zap.Any("panic", p),
				zap.ByteString("stack", debug.Stack()))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal server error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
