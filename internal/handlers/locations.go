package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

// LocationLister defines the interface that the service must implement.
type LocationLister interface {
	List(ctx context.Context) ([]models.LocationDB, error)
}

// LocationsErrorResponse represents an error response for the listing
// swagger:model LocationsErrorResponse
type LocationsErrorResponse struct {
	// Error message
	// example: Internal server error.
	Message string `json:"message"`
}

// NewListLocationsHandler returns an HTTP handler listing all locations
// in ascending name order.
// @Summary List locations
// @Description Returns every location, sorted by name ascending
// @Tags locations
// @Produce json
// @Success 200 {array} models.LocationDB "Locations"
// @Failure 401 {object} middlewares.AuthErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.LocationsErrorResponse "Store failure"
// @Router /locations [get]
// @Security BearerAuth
func NewListLocationsHandler(svc LocationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		locations, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list locations", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Message: "Internal server error.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(locations)
	}
}
