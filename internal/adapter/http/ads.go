package httpadapter

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"adserve/internal/core/port"
)

// handleSelectAd serves the best-matching advertisement for a client. It
// expects a client_id query parameter. A missing or malformed id yields
// HTTP 400. An empty eligible set and an exhausted allocation loop both
// yield HTTP 404, with distinct messages so callers can tell them apart.
func (h *Handler) handleSelectAd(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("client_id")
	if rawID == "" {
		h.writeDetail(w, http.StatusBadRequest, "client_id not provided")
		return
	}
	clientID, err := uuid.Parse(rawID)
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid client_id")
		return
	}

	resp, err := h.svc.SelectAd(r.Context(), clientID)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, port.ErrClientNotFound):
		h.writeDetail(w, http.StatusNotFound, "client not found")
	case errors.Is(err, port.ErrNoRelevantAds):
		h.writeMessage(w, http.StatusNotFound, "not relevant ads")
	case errors.Is(err, port.ErrNoAdsAvailable):
		h.writeMessage(w, http.StatusNotFound, "No new advertisements available")
	default:
		h.internalError(w, "select ad error", err)
	}
}
