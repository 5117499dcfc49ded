package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaV2Facade verifies CAPTCHA answer tokens against the Google
// reCAPTCHA v2 siteverify endpoint. It is the one production implementation
// of the captcha verification strategy.
type RecaptchaV2Facade struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

// RecaptchaOpt configures a RecaptchaV2Facade.
type RecaptchaOpt func(*RecaptchaV2Facade)

// WithVerifyURL overrides the verification endpoint.
func WithVerifyURL(u string) RecaptchaOpt {
	return func(f *RecaptchaV2Facade) { f.verifyURL = u }
}

// WithRecaptchaHTTPClient overrides the HTTP client.
func WithRecaptchaHTTPClient(c *http.Client) RecaptchaOpt {
	return func(f *RecaptchaV2Facade) { f.httpClient = c }
}

// NewRecaptchaV2Facade creates a new facade with the shared secret.
func NewRecaptchaV2Facade(secret string, opts ...RecaptchaOpt) *RecaptchaV2Facade {
	f := &RecaptchaV2Facade{
		secret:    secret,
		verifyURL: defaultVerifyURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify sends the client-supplied answer token to the verification service
// and returns its decision. Network and decode failures return an error.
func (f *RecaptchaV2Facade) Verify(ctx context.Context, answerToken string) (bool, error) {
	form := url.Values{
		"secret":   {f.secret},
		"response": {answerToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("captcha verification request failed", "error", err)
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("captcha verification unexpected status", "status", resp.StatusCode)
		return false, fmt.Errorf("siteverify request failed with status %d", resp.StatusCode)
	}

	var decision siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
		logger.Log.Errorw("captcha verification decode failed", "error", err)
		return false, err
	}

	logger.Log.Infow("captcha verification decision",
		"success", decision.Success,
		"error_codes", decision.ErrorCodes,
	)

	return decision.Success, nil
}
