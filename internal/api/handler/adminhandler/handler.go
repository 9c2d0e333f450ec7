// Package adminhandler serves the administrative endpoints that manage the
// URL allow-list. They are guarded by a static API key, not by user tokens.
package adminhandler

import (
	"encoding/json"
	"net/http"
	"presell/internal/allowlist"
	"presell/internal/api/handler/v1handler"
	"presell/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// TrustDomainRequest is the body of POST /allowed-domains.
type TrustDomainRequest struct {
	Domain string `json:"domain"`
}

// AllowedDomains lists the trusted domain suffixes.
type AllowedDomains struct {
	Domains []string `json:"domains"`
}

type Handler struct {
	allowList allowlist.Manager
}

func New(allowList allowlist.Manager) *Handler {
	return &Handler{allowList: allowList}
}

// Routes returns the admin routes. Authentication is left to the caller.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/allowed-domains", h.ListDomains)
	r.Post("/allowed-domains", h.TrustDomain)

	return r
}

func (h *Handler) ListDomains(w http.ResponseWriter, _ *http.Request) {
	v1handler.WriteJSON(w, http.StatusOK, AllowedDomains{Domains: h.allowList.Domains()})
}

// TrustDomain adds a domain to the allow-list of every process.
func (h *Handler) TrustDomain(w http.ResponseWriter, r *http.Request) {
	var req TrustDomainRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&req); err != nil {
		v1handler.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	if _, err := h.allowList.Trust(r.Context(), req.Domain); err != nil {
		v1handler.WriteError(w, r, err)

		return
	}

	v1handler.WriteJSON(w, http.StatusCreated, AllowedDomains{Domains: h.allowList.Domains()})
}
