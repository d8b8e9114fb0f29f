package http

import (
	"net/http"

	"github.com/oceansouq/platform-core/internal/domain"
	"github.com/oceansouq/platform-core/internal/fare"
)

type rideEstimateRequest struct {
	Pickup  fare.Point `json:"pickup"`
	Dropoff fare.Point `json:"dropoff"`
	Tier    string     `json:"tier"`
}

// estimateRide quotes a trip for the authenticated rider. The calculation
// is pure; nothing is persisted for an estimate.
func (h *Handler) estimateRide(w http.ResponseWriter, r *http.Request) {
	var req rideEstimateRequest
	if err := decodeBody(r, &req); err != nil {
		writeMappedError(r.Context(), w, "estimate_ride", err)
		return
	}
	if req.Pickup.Lat < -90 || req.Pickup.Lat > 90 || req.Dropoff.Lat < -90 || req.Dropoff.Lat > 90 {
		writeMappedError(r.Context(), w, "estimate_ride", &domain.FieldError{Field: "lat"})
		return
	}
	if req.Pickup.Lng < -180 || req.Pickup.Lng > 180 || req.Dropoff.Lng < -180 || req.Dropoff.Lng > 180 {
		writeMappedError(r.Context(), w, "estimate_ride", &domain.FieldError{Field: "lng"})
		return
	}

	quote := fare.Estimate(req.Pickup, req.Dropoff, fare.Tier(req.Tier))
	writeJSON(w, http.StatusOK, quote)
}
