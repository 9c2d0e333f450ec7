// Package urlscanio captures screenshots through the public urlscan.io API.
// Every viewport is submitted as its own scan, and the rendered screenshot is
// copied into the artifact store once the scan finishes.
package urlscanio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"presell/pkg/serrors"
	"strconv"
	"strings"
	"time"
)

const baseURL = "https://urlscan.io"

// RateLimitStatus describes the current API rate-limit window reported by
// urlscan.io.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// SubmitRes represents the response of a successful URL submission.
type SubmitRes struct {
	ID string // ID is the scan identifier returned by urlscan.io.
}

// ScanResult is the part of a finished scan the backend needs.
type ScanResult struct {
	// PageURL is the location the page ended up on after redirects.
	PageURL string
	// ScreenshotURL points to the PNG screenshot of the page.
	ScreenshotURL string
}

// Client talks to the urlscan.io REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to urlscan.io
	token      string       // token is the API key for urlscan.io
}

// New constructs a Client that uses the provided http.Client and API token.
func New(httpClient *http.Client, token string) *Client {
	return &Client{
		httpClient: httpClient,
		token:      token,
	}
}

// ParseRateLimit extracts urlscan.io rate-limit information from the HTTP
// response headers.
func ParseRateLimit(h http.Header) (RateLimitStatus, error) {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}
	limit := atoi(h.Get("X-Rate-Limit-Limit"))
	remaining := atoi(h.Get("X-Rate-Limit-Remaining"))

	resetAt, err := time.Parse(time.RFC3339Nano, h.Get("X-Rate-Limit-Reset"))
	if err != nil {
		return RateLimitStatus{}, fmt.Errorf("could not parse reset at: %w", err)
	}

	return RateLimitStatus{Limit: limit, Remaining: remaining, ResetAt: resetAt}, nil
}

// SubmitURL submits URL for scanning, rendered with userAgent when it is not
// empty. Scans are unlisted so producer pages do not show up in public feeds.
func (c *Client) SubmitURL(ctx context.Context, URL, userAgent string) (SubmitRes, RateLimitStatus, error) {
	// https://docs.urlscan.io/apis/urlscan-openapi/scanning/submitscan
	type submitReq struct {
		URL         string `json:"url"`
		Visibility  string `json:"visibility,omitempty"`
		CustomAgent string `json:"customagent,omitempty"`
	}
	bodyBytes, err := json.Marshal(submitReq{URL: URL, Visibility: "unlisted", CustomAgent: userAgent})
	if err != nil {
		return SubmitRes{}, RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		baseURL+"/api/v1/scan",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return SubmitRes{}, RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SubmitRes{}, RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, err := ParseRateLimit(resp.Header)
	if err != nil {
		return SubmitRes{}, rl, fmt.Errorf("could not parse rate limit: %w", err)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return SubmitRes{}, rl, fmt.Errorf("could not read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return SubmitRes{}, rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusBadRequest:
		// urlscan.io refuses blocked or unresolvable domains with 400
		return SubmitRes{}, rl, serrors.With(serrors.ErrBadRequest, "submit rejected: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return SubmitRes{}, rl, fmt.Errorf("submit failed: %s", strings.TrimSpace(string(b)))
	}

	var submitResp struct {
		UUID string `json:"uuid"`
	}
	if err := json.Unmarshal(b, &submitResp); err != nil {
		return SubmitRes{}, rl, fmt.Errorf("could not decode response: %w", err)
	}

	return SubmitRes{ID: submitResp.UUID}, rl, nil
}

// Result fetches the result of scanID. It returns ErrNotFound while the scan
// is still running.
func (c *Client) Result(ctx context.Context, scanID string) (*ScanResult, error) {
	// https://docs.urlscan.io/apis/urlscan-openapi/scanning/resultapi
	b, err := c.get(ctx, baseURL+"/api/v1/result/"+scanID+"/")
	if err != nil {
		return nil, err
	}

	var rs struct {
		Page struct {
			URL string `json:"url"`
		} `json:"page"`
		Task struct {
			ScreenshotURL string `json:"screenshotURL"`
		} `json:"task"`
	}
	if err := json.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &ScanResult{PageURL: rs.Page.URL, ScreenshotURL: rs.Task.ScreenshotURL}, nil
}

// Screenshot downloads the screenshot a finished scan points to.
func (c *Client) Screenshot(ctx context.Context, screenshotURL string) ([]byte, error) {
	if !strings.HasPrefix(screenshotURL, baseURL+"/") {
		return nil, serrors.With(serrors.ErrBadRequest, "unexpected screenshot location %q", screenshotURL)
	}

	return c.get(ctx, screenshotURL)
}

func (c *Client) get(ctx context.Context, URL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Api-Key", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, serrors.With(serrors.ErrNotFound, "not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("get %s failed: %s", req.URL.Path, strings.TrimSpace(string(b)))
	}

	return b, nil
}
