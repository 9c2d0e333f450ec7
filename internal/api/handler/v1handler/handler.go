// Package v1handler implements the version 1 HTTP API: URL validation and the
// presell resources of the authenticated user.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"presell/internal/presell"
	"presell/pkg/logger"
	"presell/pkg/serrors"
	"presell/pkg/urlguard"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// URLValidator checks destination URLs.
type URLValidator interface {
	Validate(raw string) urlguard.Result
}

// Deps are the services the v1 handlers call into.
type Deps struct {
	Presells  presell.Service
	Validator URLValidator
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 routes. Every route requires a bearer token checked by
// sec.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(sec.Middleware)

	r.Post("/urls/validate", h.ValidateURL)

	r.Route("/presells", func(r chi.Router) {
		r.Post("/", h.CreatePresell)
		r.Get("/", h.ListPresells)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetPresell)
			r.Delete("/", h.DeletePresell)
			r.Post("/capture", h.RecapturePresell)
			r.Get("/screenshots", h.GetScreenshots)
		})
	})

	return r
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Reason narrows Code down, e.g. the validation rule that rejected a URL.
	Reason string `json:"reason,omitempty"`
}

// StatusCode maps a semantic error kind to an HTTP status.
func StatusCode(kind serrors.Kind) int {
	switch kind {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrConflict:     "conflict",
	serrors.ErrRateLimited:  "too many requests",
	serrors.ErrTimeout:      "timed out",
	serrors.ErrUnavailable:  "service unavailable",
}

// NewError converts err into a status code and response body. Causes of
// semantic errors are logged, never returned to the client.
func NewError(r *http.Request, err error) (int, ErrorResponse) {
	ctx := r.Context()

	kind := serrors.KindOf(err)

	status := StatusCode(kind)
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "internal error", zap.Error(err))

		return status, ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"}
	}

	logger.Debug(ctx, "request failed", zap.Error(err))

	res := ErrorResponse{Code: kind.Error(), Message: defaultMessages[kind]}
	var e *serrors.Error
	if errors.As(err, &e) && e.Message() != "" {
		res.Message = e.Message()
	}
	if reason := serrors.Reason(err); reason != nil && reason != kind {
		res.Reason = reason.Error()
	}

	return status, res
}

// WriteError writes err as a JSON error response.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, res := NewError(r, err)
	WriteJSON(w, status, res)
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// decode reads a JSON body into v, rejecting unknown fields.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
