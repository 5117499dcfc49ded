package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
)

// CaptchaVerifier is the verification-strategy contract: a yes/no decision
// delegated to an external service.
type CaptchaVerifier interface {
	Verify(ctx context.Context, answerToken string) (bool, error)
}

// VerifyRequest represents the JSON body for CAPTCHA verification
// swagger:model VerifyRequest
type VerifyRequest struct {
	// Client-supplied CAPTCHA answer token
	// required: true
	CaptchaValue string `json:"captchaValue"`
}

// VerifyResponse represents a successful CAPTCHA verification
// swagger:model VerifyResponse
type VerifyResponse struct {
	// Verification decision
	// example: true
	IsCaptchaValid bool `json:"isCaptchaValid"`
}

// VerifyErrorResponse represents a failed CAPTCHA verification
// swagger:model VerifyErrorResponse
type VerifyErrorResponse struct {
	// Error message
	// example: CAPTCHA verification failed.
	Msg string `json:"msg"`
}

// NewVerifyHandler returns an HTTP handler for CAPTCHA verification.
// Network failures, malformed responses, and rejected answers all collapse
// into the same 400 response.
// @Summary Verify a CAPTCHA answer
// @Description Delegates the decision to the external verification service
// @Tags verify
// @Accept json
// @Produce json
// @Param verifyRequest body handlers.VerifyRequest true "CAPTCHA answer token"
// @Success 200 {object} handlers.VerifyResponse "Verification passed"
// @Failure 400 {object} handlers.VerifyErrorResponse "Verification failed"
// @Router /verify [post]
func NewVerifyHandler(verifier CaptchaVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		failed := func() {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerifyErrorResponse{
				Msg: "CAPTCHA verification failed.",
			})
		}

		var req VerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CaptchaValue == "" {
			failed()
			return
		}

		valid, err := verifier.Verify(r.Context(), req.CaptchaValue)
		if err != nil {
			logger.Log.Errorw("captcha verification error", "err", err)
			failed()
			return
		}
		if !valid {
			failed()
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyResponse{
			IsCaptchaValid: true,
		})
	}
}
