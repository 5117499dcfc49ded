package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

// LocationGetter defines the interface that the service must implement.
type LocationGetter interface {
	Get(ctx context.Context, id int64) (*models.LocationDB, *models.AverageRatingsDB, error)
}

// Ratings holds mean sensory ratings formatted to one decimal place.
// A field is null when the location has no reviews.
// swagger:model Ratings
type Ratings struct {
	// Mean noise level
	// example: 2.5
	Noise *string `json:"noise"`

	// Mean light level
	// example: 3.0
	Light *string `json:"light"`

	// Mean crowd level
	// example: 1.8
	Crowd *string `json:"crowd"`
}

// LocationDetailResponse represents a location with its aggregate ratings
// swagger:model LocationDetailResponse
type LocationDetailResponse struct {
	// Location details, null when the location does not exist
	Details *models.LocationDB `json:"details"`

	// Aggregate ratings
	Ratings Ratings `json:"ratings"`
}

// formatRating renders a mean rating to one decimal place, nil-preserving.
func formatRating(v *float64) *string {
	if v == nil {
		return nil
	}
	s := fmt.Sprintf("%.1f", *v)
	return &s
}

// NewGetLocationHandler returns an HTTP handler for a single location with
// its average ratings.
// @Summary Get a location
// @Description Returns location details and mean noise/light/crowd ratings. Ratings are null when no reviews exist.
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} handlers.LocationDetailResponse "Location with ratings"
// @Failure 400 {object} handlers.LocationsErrorResponse "Non-numeric ID"
// @Failure 401 {object} middlewares.AuthErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.LocationsErrorResponse "Store failure"
// @Router /locations/{id} [get]
// @Security BearerAuth
func NewGetLocationHandler(svc LocationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Message: "Location id must be numeric.",
			})
			return
		}

		details, ratings, err := svc.Get(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("failed to get location", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LocationsErrorResponse{
				Message: "Internal server error.",
			})
			return
		}

		resp := LocationDetailResponse{
			Details: details,
		}
		if ratings != nil {
			resp.Ratings = Ratings{
				Noise: formatRating(ratings.Noise),
				Light: formatRating(ratings.Light),
				Crowd: formatRating(ratings.Crowd),
			}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
