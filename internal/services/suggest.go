package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

// promptTemplate instructs the model to answer with a bare JSON object so
// the completion can be parsed directly.
const promptTemplate = `You are a helpful assistant for the SensoryScout application. Your goal is to suggest
locations based on user requests related to sensory needs: (ex. "quiet", "not crowded", "dimly lit").

Based on the user's message: %q, provide 2-3 location suggestions.

VERY IMPORTANT: Respond ONLY with a valid JSON object. Do not include any text before or after the JSON.

The JSON object should follow this structure, with no prefixes:
{
    "suggestions" : [
        {
            "name" : "Location Name",
            "type" : "ex, Cafe, Park, Library",
            "reason" : "A brief explanation of why this location fits the user's request."
        }
    ]
}`

// ContentGenerator produces a text completion for a prompt.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// SuggestService turns free-text sensory requests into structured location
// suggestions via an external generative model.
type SuggestService struct {
	model ContentGenerator
}

// NewSuggestService creates a new SuggestService.
func NewSuggestService(model ContentGenerator) *SuggestService {
	return &SuggestService{model: model}
}

// Suggest builds the prompt for the given message and parses the model's
// JSON completion. Provider and parse failures are equivalent to the caller.
func (svc *SuggestService) Suggest(ctx context.Context, message string) (*models.Suggestions, error) {
	prompt := fmt.Sprintf(promptTemplate, message)

	completion, err := svc.model.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Log.Errorw("failed to get completion", "err", err)
		return nil, err
	}

	var suggestions models.Suggestions
	if err := json.Unmarshal([]byte(completion), &suggestions); err != nil {
		logger.Log.Errorw("failed to parse completion", "completion", completion, "err", err)
		return nil, err
	}

	return &suggestions, nil
}
