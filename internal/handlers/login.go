package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (int64, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: a@x.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: pw123456
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Authenticated user ID
	// example: 1
	User int64 `json:"user"`

	// Signed identity token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// example: Invalid credentials.
	Message string `json:"message"`
}

// NewLoginHandler returns an HTTP handler for user login.
// An unknown email responds 403; a wrong password responds 401.
// @Summary User login
// @Description Authenticate user and return a signed identity token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "User ID and token"
// @Failure 401 {object} handlers.LoginErrorResponse "Wrong password"
// @Failure 403 {object} handlers.LoginErrorResponse "Unknown email"
// @Failure 500 {object} handlers.LoginErrorResponse "Store failure"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Message: "Please enter email and password.",
			})
			return
		}

		userID, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "Invalid credentials.",
				})
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "Invalid credentials.",
				})
			default:
				logger.Log.Errorw("login failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "Internal server error.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			User:  userID,
			Token: token,
		})
	}
}
