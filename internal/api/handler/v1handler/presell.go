package v1handler

import (
	"net/http"
	"presell/pkg/domain"
	"presell/pkg/serrors"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DefaultLimit is the page size used when the client does not send one.
const DefaultLimit = 20

// MaxLimit caps the page size a client may ask for.
const MaxLimit = 100

// Presell is the API representation of a presell.
type Presell struct {
	ID                 uuid.UUID            `json:"id"`
	URL                string               `json:"url"`
	Status             domain.PresellStatus `json:"status"`
	CaptureState       domain.CaptureState  `json:"captureState,omitempty"`
	Desktop            *string              `json:"desktop"`
	Mobile             *string              `json:"mobile"`
	CaptureRequestedAt time.Time            `json:"captureRequestedAt"`
	CapturedAt         *time.Time           `json:"capturedAt,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          *time.Time           `json:"updatedAt,omitempty"`
}

// PresellList is a page of presells.
type PresellList struct {
	Items      []Presell `json:"items"`
	NextCursor *string   `json:"nextCursor"`
}

// CreatePresellRequest is the body of POST /presells.
type CreatePresellRequest struct {
	URL string `json:"url"`
}

func optTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

// DomainPresellToV1 converts a domain presell into its API representation.
func DomainPresellToV1(in *domain.Presell) Presell {
	return Presell{
		ID:                 uuid.UUID(in.ID),
		URL:                in.URL,
		Status:             in.Status,
		CaptureState:       in.CaptureState,
		Desktop:            in.Screenshots.Desktop,
		Mobile:             in.Screenshots.Mobile,
		CaptureRequestedAt: in.CaptureRequestedAt,
		CapturedAt:         optTime(in.CapturedAt),
		CreatedAt:          in.CreatedAt,
		UpdatedAt:          optTime(in.UpdatedAt),
	}
}

func presellID(r *http.Request) (domain.PresellID, error) {
	ID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return domain.PresellID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid presell id")
	}

	return domain.PresellID(ID), nil
}

// CreatePresell validates the destination URL, stores the presell and queues
// its capture.
func (h *Handler) CreatePresell(w http.ResponseWriter, r *http.Request) {
	var req CreatePresellRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, r, err)

		return
	}

	p, err := h.deps.Presells.Create(r.Context(), GetUserIDFromContext(r.Context()), req.URL)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	w.Header().Set("Location", "/v1/presells/"+p.ID.String())
	WriteJSON(w, http.StatusAccepted, DomainPresellToV1(p))
}

// ListPresells returns a page of the user's presells.
func (h *Handler) ListPresells(w http.ResponseWriter, r *http.Request) {
	limit := uint64(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 || n > MaxLimit {
			WriteError(w, r, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit))

			return
		}
		limit = n
	}

	presells, next, err := h.deps.Presells.UserPresells(r.Context(),
		GetUserIDFromContext(r.Context()),
		r.URL.Query().Get("cursor"),
		uint(limit))
	if err != nil {
		WriteError(w, r, err)

		return
	}

	out := PresellList{Items: make([]Presell, 0, len(presells))}
	for i := range presells {
		out.Items = append(out.Items, DomainPresellToV1(&presells[i]))
	}
	if next != "" {
		out.NextCursor = &next
	}

	WriteJSON(w, http.StatusOK, out)
}

// GetPresell returns a presell by ID.
func (h *Handler) GetPresell(w http.ResponseWriter, r *http.Request) {
	ID, err := presellID(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	p, err := h.deps.Presells.Get(r.Context(), GetUserIDFromContext(r.Context()), ID)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	WriteJSON(w, http.StatusOK, DomainPresellToV1(p))
}

// DeletePresell deletes a presell by ID.
func (h *Handler) DeletePresell(w http.ResponseWriter, r *http.Request) {
	ID, err := presellID(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	if err := h.deps.Presells.Delete(r.Context(), GetUserIDFromContext(r.Context()), ID); err != nil {
		WriteError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecapturePresell queues a new capture of a presell.
func (h *Handler) RecapturePresell(w http.ResponseWriter, r *http.Request) {
	ID, err := presellID(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	p, err := h.deps.Presells.Recapture(r.Context(), GetUserIDFromContext(r.Context()), ID)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	WriteJSON(w, http.StatusAccepted, DomainPresellToV1(p))
}

// GetScreenshots is polled by clients until ready is true.
func (h *Handler) GetScreenshots(w http.ResponseWriter, r *http.Request) {
	ID, err := presellID(r)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	s, err := h.deps.Presells.Screenshots(r.Context(), GetUserIDFromContext(r.Context()), ID)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	WriteJSON(w, http.StatusOK, s)
}

