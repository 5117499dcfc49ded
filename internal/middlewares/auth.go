package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sensoryscout/sensoryscout-backend/internal/jwt"
	"github.com/sensoryscout/sensoryscout-backend/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type contextKey string

const userIDKey contextKey = "userID"

// UserID returns the authenticated user ID stored in the request context.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// AuthErrorResponse is the JSON body written on authentication failure.
type AuthErrorResponse struct {
	Message string `json:"message"`
}

// AuthMiddleware returns a middleware that validates the bearer token and
// injects the user identity into the request context. A missing token stops
// the chain with a single 401 response; the downstream handler never runs.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(AuthErrorResponse{
					Message: "Invalid authentication (no token).",
				})
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(AuthErrorResponse{
					Message: "Invalid authentication.",
				})
				return
			}

			ctx = context.WithValue(ctx, userIDKey, claims.User.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
