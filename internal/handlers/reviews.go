package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/middlewares"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

// ReviewCreator defines the interface that the service must implement.
type ReviewCreator interface {
	Create(ctx context.Context, userID, locationID int64, noiseLevel, lightLevel, crowdLevel int) (*models.ReviewDB, error)
}

// ReviewRequest represents the JSON body for review submission.
// The author is taken from the verified token, not from the body.
// swagger:model ReviewRequest
type ReviewRequest struct {
	// Reviewed location
	// required: true
	// example: 5
	LocationID int64 `json:"location_id"`

	// Noise rating
	// example: 2
	NoiseLevel int `json:"noise_level"`

	// Light rating
	// example: 3
	LightLevel int `json:"light_level"`

	// Crowd rating
	// example: 1
	CrowdLevel int `json:"crowd_level"`
}

// ReviewErrorResponse represents an error response for review submission
// swagger:model ReviewErrorResponse
type ReviewErrorResponse struct {
	// Error message
	// example: Internal server error.
	Message string `json:"message"`
}

// NewCreateReviewHandler returns an HTTP handler for review submission.
// @Summary Submit a review
// @Description Stores a sensory review attributed to the authenticated user. An unknown location_id fails at the store's foreign key.
// @Tags reviews
// @Accept json
// @Produce json
// @Param reviewRequest body handlers.ReviewRequest true "Review"
// @Success 201 {object} models.ReviewDB "Created review"
// @Failure 400 {object} handlers.ReviewErrorResponse "Invalid request body"
// @Failure 401 {object} middlewares.AuthErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.ReviewErrorResponse "Store failure"
// @Router /reviews [post]
// @Security BearerAuth
func NewCreateReviewHandler(svc ReviewCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.UserID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReviewErrorResponse{
				Message: "Invalid authentication.",
			})
			return
		}

		var req ReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReviewErrorResponse{
				Message: "Invalid request body.",
			})
			return
		}

		review, err := svc.Create(r.Context(), userID, req.LocationID, req.NoiseLevel, req.LightLevel, req.CrowdLevel)
		if err != nil {
			logger.Log.Errorw("failed to create review", "location_id", req.LocationID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReviewErrorResponse{
				Message: "Internal server error.",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(review)
	}
}
