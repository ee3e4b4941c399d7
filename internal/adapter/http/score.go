package httpadapter

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"adserve/internal/core/port"
)

// handleScore is a diagnostic endpoint returning the pacing-aware composite
// score for a (client, campaign) pair, computed from freshly counted event
// rows rather than the cached counters.
func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	campaignID, err := uuid.Parse(q.Get("campaign_id"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid campaign_id")
		return
	}
	clientID, err := uuid.Parse(q.Get("client_id"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid client_id")
		return
	}

	score, err := h.svc.CampaignScore(r.Context(), clientID, campaignID)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, map[string]float64{"score": score})
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeDetail(w, http.StatusNotFound, "campaign not found")
	case errors.Is(err, port.ErrClientNotFound):
		h.writeDetail(w, http.StatusNotFound, "client not found")
	default:
		h.internalError(w, "campaign score error", err)
	}
}
