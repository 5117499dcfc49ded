package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
	"github.com/sensoryscout/sensoryscout-backend/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: a@x.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: pw123456
	Password string `json:"password"`
}

// RegisteredUser is the public view of a created user
// swagger:model RegisteredUser
type RegisteredUser struct {
	// User ID
	// example: 1
	ID int64 `json:"id"`

	// Email
	// example: a@x.com
	Email string `json:"email"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User created successfully.
	Message string `json:"message"`

	// Created user
	User RegisteredUser `json:"user"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// example: Please enter email and password.
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Password is hashed before storing. A duplicate email fails at the store's unique constraint.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully created"
// @Failure 400 {object} handlers.RegisterErrorResponse "Missing email or password"
// @Failure 500 {object} handlers.RegisterErrorResponse "Store failure"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Message: "Please enter email and password.",
			})
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			logger.Log.Errorw("registration failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Message: "Internal server error.",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "User created successfully.",
			User: RegisteredUser{
				ID:    user.ID,
				Email: user.Email,
			},
		})
	}
}
