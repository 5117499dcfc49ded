package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrEmptyCompletion is returned when the model response carries no text.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

// GeminiFacade calls the Google generative-model completion endpoint and
// returns the raw text of the first candidate. The response format is
// constrained to JSON so callers can parse it directly.
type GeminiFacade struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// GeminiOpt configures a GeminiFacade.
type GeminiOpt func(*GeminiFacade)

// WithGeminiBaseURL overrides the API base URL.
func WithGeminiBaseURL(u string) GeminiOpt {
	return func(f *GeminiFacade) { f.baseURL = u }
}

// WithGeminiModel overrides the model name.
func WithGeminiModel(model string) GeminiOpt {
	return func(f *GeminiFacade) { f.model = model }
}

// WithGeminiHTTPClient overrides the HTTP client.
func WithGeminiHTTPClient(c *http.Client) GeminiOpt {
	return func(f *GeminiFacade) { f.httpClient = c }
}

// NewGeminiFacade creates a new facade with the given API key.
func NewGeminiFacade(apiKey string, opts ...GeminiOpt) *GeminiFacade {
	f := &GeminiFacade{
		apiKey:  apiKey,
		model:   "gemini-1.5-flash",
		baseURL: defaultGeminiBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// GenerateContent sends a prompt to the model and returns the completion text.
func (f *GeminiFacade) GenerateContent(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]string{
			"responseMimeType": "application/json",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", f.baseURL, f.model, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("model completion request failed", "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("model completion unexpected status", "status", resp.StatusCode)
		return "", fmt.Errorf("model request failed with status %d", resp.StatusCode)
	}

	var envelope geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		logger.Log.Errorw("model completion decode failed", "error", err)
		return "", err
	}

	for _, candidate := range envelope.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}

	return "", ErrEmptyCompletion
}
