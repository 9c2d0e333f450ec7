package controller_test

import (
	"net/http"
	"net/http/httptest"
	"presell/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func serveCORS(h http.Handler, method, origin string) *http.Response {
	req := httptest.NewRequest(method, "/anything", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec.Result()
}

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	res := serveCORS(controller.WithCORS()(next), http.MethodOptions, "https://app.example.com")

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "X-API-Key")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestWithCORS_NormalRequest(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	res := serveCORS(controller.WithCORS("*")(next), http.MethodGet, "")

	require.True(t, called, "next handler should be called for non-OPTIONS request")
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Contains(t, res.Header.Get("Access-Control-Expose-Headers"), "Location")
}

func TestWithCORS_AllowedOrigins(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := controller.WithCORS("https://App.example.com/", "https://admin.example.com")(next)

	res := serveCORS(h, http.MethodGet, "https://app.example.com")
	require.Equal(t, "https://app.example.com", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "Origin", res.Header.Get("Vary"))
	require.NotEmpty(t, res.Header.Get("Access-Control-Allow-Methods"))

	res = serveCORS(h, http.MethodOptions, "https://evil.example.com")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Methods"))

	res = serveCORS(h, http.MethodGet, "")
	require.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
}
