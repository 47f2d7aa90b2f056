package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService abstracts bearer token issuance and validation.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token pair for a user.
	// Roles travel only in the access token for stateless authorization.
	GenerateTokens(userID int64, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
