package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"adserve/internal/core/port"
)

type mlScoreRequest struct {
	ClientID     uuid.UUID `json:"client_id"`
	AdvertiserID uuid.UUID `json:"advertiser_id"`
	Score        int       `json:"score"`
}

// handleIngestScore upserts a relevance score for a (client, advertiser)
// pair and triggers a normalization cache refresh. The latest write wins.
func (h *Handler) handleIngestScore(w http.ResponseWriter, r *http.Request) {
	var body mlScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if body.Score < 1 || body.Score > 100 {
		h.writeDetail(w, http.StatusBadRequest, "score must be between 1 and 100")
		return
	}

	err := h.svc.IngestScore(r.Context(), body.ClientID, body.AdvertiserID, body.Score)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, body)
	case errors.Is(err, port.ErrClientNotFound):
		h.writeDetail(w, http.StatusNotFound, "client not found")
	case errors.Is(err, port.ErrAdvertiserNotFound):
		h.writeDetail(w, http.StatusNotFound, "advertiser not found")
	default:
		h.internalError(w, "ingest score error", err)
	}
}
