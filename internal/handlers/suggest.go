package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

// Suggester defines the interface that the service must implement.
type Suggester interface {
	Suggest(ctx context.Context, message string) (*models.Suggestions, error)
}

// SuggestRequest represents the JSON body for a suggestion request
// swagger:model SuggestRequest
type SuggestRequest struct {
	// Free-text sensory request
	// required: true
	// example: somewhere quiet to read
	Message string `json:"message"`
}

// SuggestErrorResponse represents an error response for suggestions
// swagger:model SuggestErrorResponse
type SuggestErrorResponse struct {
	// Error message
	// example: Failed to get suggestions.
	Error string `json:"error"`
}

// NewSuggestHandler returns an HTTP handler for AI location suggestions.
// Provider and parse failures are indistinguishable to the client.
// @Summary Suggest locations
// @Description Returns 2-3 AI-generated location suggestions for a sensory request
// @Tags suggest
// @Accept json
// @Produce json
// @Param suggestRequest body handlers.SuggestRequest true "Suggestion request"
// @Success 200 {object} models.Suggestions "Suggestions"
// @Failure 400 {object} handlers.SuggestErrorResponse "Missing message"
// @Failure 500 {object} handlers.SuggestErrorResponse "Provider or parse failure"
// @Router /suggest [post]
func NewSuggestHandler(svc Suggester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req SuggestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SuggestErrorResponse{
				Error: "Message is required.",
			})
			return
		}

		suggestions, err := svc.Suggest(r.Context(), req.Message)
		if err != nil {
			logger.Log.Errorw("failed to get suggestions", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SuggestErrorResponse{
				Error: "Failed to get suggestions.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(suggestions)
	}
}
