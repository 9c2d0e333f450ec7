package controller_test

import (
	"net/http"
	"net/http/httptest"
	"presell/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithAPIKey(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name   string
		key    string
		header string
		status int
	}{
		{name: "matching key", key: "secret", header: "secret", status: http.StatusOK},
		{name: "wrong key", key: "secret", header: "nope", status: http.StatusUnauthorized},
		{name: "missing header", key: "secret", header: "", status: http.StatusUnauthorized},
		{name: "unconfigured key rejects all", key: "", header: "", status: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set(controller.APIKeyHeader, tc.header)
			}
			rec := httptest.NewRecorder()

			controller.WithAPIKey(tc.key)(next).ServeHTTP(rec, req)
			require.Equal(t, tc.status, rec.Code)
		})
	}
}
