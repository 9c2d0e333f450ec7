package v1handler

import "net/http"

// ValidateURLRequest is the body of POST /urls/validate.
type ValidateURLRequest struct {
	URL string `json:"url"`
}

// ValidateURLResponse reports whether a URL would be accepted for a presell.
type ValidateURLResponse struct {
	Valid        bool   `json:"valid"`
	SanitizedURL string `json:"sanitizedUrl,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Error        string `json:"error,omitempty"`
}

// ValidateURL runs the URL checks without creating anything. A rejected URL
// is a successful request with valid set to false.
func (h *Handler) ValidateURL(w http.ResponseWriter, r *http.Request) {
	var req ValidateURLRequest
	if err := decode(w, r, &req); err != nil {
		WriteError(w, r, err)

		return
	}

	res := h.deps.Validator.Validate(req.URL)
	out := ValidateURLResponse{
		Valid:        res.Valid,
		SanitizedURL: res.SanitizedURL,
		Error:        res.Message,
	}
	if res.Reason != nil {
		out.Reason = res.Reason.Error()
	}

	WriteJSON(w, http.StatusOK, out)
}

