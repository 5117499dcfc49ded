package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Error variables returned by token operations.
var (
	ErrNoSecretKey    = errors.New("jwt secret key is not configured")
	ErrInvalidToken   = errors.New("invalid token")
	ErrNoUserInToken  = errors.New("user not found in token")
	ErrNoAuthHeader   = errors.New("authorization header missing")
	ErrBadAuthHeader  = errors.New("invalid authorization header format")
	ErrUnexpectedAlgo = errors.New("unexpected signing method")
)

// Identity is the user identity embedded in a token.
type Identity struct {
	ID int64 `json:"id"`
}

// Claims is the token payload: a nested user object plus registered claims.
type Claims struct {
	User Identity `json:"user"`
	jwt.RegisteredClaims
}

// JWT issues and verifies signed identity assertions.
type JWT struct {
	secretKey string
	exp       time.Duration
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.secretKey = secret }
}

// WithExpiration sets the token lifetime. Default is one hour.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// New creates a new JWT instance.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a token carrying the given user ID.
// Fails closed when no secret key is configured.
func (j *JWT) Generate(ctx context.Context, userID int64) (string, error) {
	if j.secretKey == "" {
		return "", ErrNoSecretKey
	}

	now := time.Now()
	claims := Claims{
		User: Identity{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// Validate checks the token signature and expiration.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetClaims parses the token string and returns its claims if valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	if j.secretKey == "" {
		return nil, ErrNoSecretKey
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedAlgo
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.User.ID == 0 {
		return nil, ErrNoUserInToken
	}

	return &claims, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrBadAuthHeader
	}

	return parts[1], nil
}
