package httpadapter

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adserve/internal/core/port"
)

// handleCampaignStats returns simple aggregate counts and spend for one
// campaign. Daily and per-advertiser breakdowns are served elsewhere.
func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid campaign_id")
		return
	}

	stats, err := h.svc.Stats(r.Context(), campaignID)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, stats)
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeDetail(w, http.StatusNotFound, "campaign not found")
	default:
		h.internalError(w, "stats error", err)
	}
}
