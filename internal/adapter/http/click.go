package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adserve/internal/core/port"
)

// handleClick records a click on a previously shown advertisement. It
// expects a {campaignID} path parameter and a JSON body with the client id.
// A click without a prior impression is rejected with HTTP 403; unknown
// clients or campaigns yield HTTP 404. On success it responds with 204.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid campaign_id")
		return
	}
	var body struct {
		ClientID uuid.UUID `json:"client_id"`
	}
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeDetail(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	err = h.svc.RecordClick(r.Context(), body.ClientID, campaignID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, port.ErrClientNotFound):
		h.writeDetail(w, http.StatusNotFound, "client not found")
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeDetail(w, http.StatusNotFound, "campaign not found")
	case errors.Is(err, port.ErrNoImpression):
		h.writeDetail(w, http.StatusForbidden, "cannot click an ad that was not shown")
	default:
		h.internalError(w, "record click error", err)
	}
}
