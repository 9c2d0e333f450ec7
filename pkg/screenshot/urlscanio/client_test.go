package urlscanio_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"presell/pkg/logger"
	"presell/pkg/screenshot/urlscanio"
	"presell/pkg/serrors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *urlscanio.Client {
	return urlscanio.New(&http.Client{Transport: fn}, "test-token")
}

func rlHeader(limit, remaining int, resetAt time.Time) http.Header {
	h := http.Header{}
	h.Set("X-Rate-Limit-Limit", strconv.Itoa(limit))
	h.Set("X-Rate-Limit-Remaining", strconv.Itoa(remaining))
	h.Set("X-Rate-Limit-Reset", resetAt.Format(time.RFC3339Nano))

	return h
}

func Test_parseRateLimit_success(t *testing.T) {
	resetAt := time.Date(2025, 1, 2, 3, 4, 5, 678900000, time.UTC)

	rl, err := urlscanio.ParseRateLimit(rlHeader(120, 80, resetAt))
	require.NoError(t, err)
	require.Equal(t, 120, rl.Limit)
	require.Equal(t, 80, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func Test_parseRateLimit_badTime(t *testing.T) {
	h := http.Header{}
	h.Set("X-Rate-Limit-Limit", "120")
	h.Set("X-Rate-Limit-Remaining", "80")
	h.Set("X-Rate-Limit-Reset", "not-a-time")

	_, err := urlscanio.ParseRateLimit(h)
	require.Error(t, err)
}

func TestClient_SubmitURL_success(t *testing.T) {
	resetAt := time.Now().Add(1 * time.Hour).UTC()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "urlscan.io", r.URL.Host)
		require.Equal(t, "/api/v1/scan", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "test-token", r.Header.Get("Api-Key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "https://example.com", body["url"])
		require.Equal(t, "unlisted", body["visibility"])
		require.Equal(t, "Mobile UA", body["customagent"])

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     rlHeader(100, 99, resetAt),
			Body:       io.NopCloser(strings.NewReader(`{"uuid":"abc-123"}`)),
		}, nil
	})

	res, rl, err := c.SubmitURL(context.Background(), "https://example.com", "Mobile UA")
	require.NoError(t, err)
	require.Equal(t, "abc-123", res.ID)
	require.Equal(t, 100, rl.Limit)
	require.Equal(t, 99, rl.Remaining)
	require.True(t, rl.ResetAt.Equal(resetAt))
}

func TestClient_SubmitURL_noUserAgent(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, ok := body["customagent"]
		require.False(t, ok)

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     rlHeader(100, 99, time.Now().Add(time.Hour)),
			Body:       io.NopCloser(strings.NewReader(`{"uuid":"abc-123"}`)),
		}, nil
	})

	_, _, err := c.SubmitURL(context.Background(), "https://example.com", "")
	require.NoError(t, err)
}

func TestClient_SubmitURL_errors(t *testing.T) {
	resetAt := time.Now().Add(5 * time.Minute).UTC()

	tests := []struct {
		name     string
		status   int
		body     string
		kind     error
		contains string
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: "slow down", kind: serrors.ErrRateLimited},
		{name: "rejected", status: http.StatusBadRequest, body: "blocked domain", kind: serrors.ErrBadRequest},
		{name: "upstream", status: http.StatusBadGateway, body: "upstream bad", contains: "upstream bad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(func(r *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: tt.status,
					Header:     rlHeader(100, 0, resetAt),
					Body:       io.NopCloser(strings.NewReader(tt.body)),
				}, nil
			})

			_, rl, err := c.SubmitURL(context.Background(), "https://example.com", "")
			require.Error(t, err)
			if tt.kind != nil {
				require.ErrorIs(t, err, tt.kind)
			}
			if tt.contains != "" {
				require.Contains(t, err.Error(), tt.contains)
			}
			require.Equal(t, 100, rl.Limit)
			require.Equal(t, 0, rl.Remaining)
			require.True(t, rl.ResetAt.Equal(resetAt))
		})
	}
}

func TestClient_Result_success(t *testing.T) {
	body := `{"page":{"url":"https://example.com/landing","domain":"example.com"},` +
		`"task":{"uuid":"scan-123","screenshotURL":"https://urlscan.io/screenshots/scan-123.png"}}`

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/result/scan-123/", r.URL.Path)
		require.Equal(t, "test-token", r.Header.Get("Api-Key"))

		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body))}, nil
	})

	res, err := c.Result(context.Background(), "scan-123")
	require.NoError(t, err)
	require.Equal(t, &urlscanio.ScanResult{
		PageURL:       "https://example.com/landing",
		ScreenshotURL: "https://urlscan.io/screenshots/scan-123.png",
	}, res)
}

func TestClient_Result_404(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader("not found"))}, nil
	})

	res, err := c.Result(context.Background(), "scan-404")
	require.Error(t, err)
	require.Nil(t, res)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_Result_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusBadGateway, Body: io.NopCloser(strings.NewReader("bad upstream"))}, nil
	})

	res, err := c.Result(context.Background(), "scan-500")
	require.Error(t, err)
	require.Nil(t, res)
	require.Contains(t, err.Error(), "bad upstream")
}

func TestClient_Screenshot(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/screenshots/scan-123.png", r.URL.Path)

		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("png"))}, nil
	})

	img, err := c.Screenshot(context.Background(), "https://urlscan.io/screenshots/scan-123.png")
	require.NoError(t, err)
	require.Equal(t, []byte("png"), img)

	_, err = c.Screenshot(context.Background(), "https://elsewhere.example/x.png")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
