package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Common token validation errors.
var (
	// ErrInvalidToken indicates a token that is malformed, has a bad
	// signature, or otherwise failed validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates a structurally valid token whose expiry
	// has passed.
	ErrExpiredToken = errors.New("expired token")
)

// Claims represents the payload carried inside an access token.
type Claims struct {
	// UserID is the authenticated user's ID.
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// JWTService defines the interface for issuing and validating access tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for the given user ID.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken verifies the given token string and returns its claims.
	// Returns ErrExpiredToken for expired tokens and ErrInvalidToken for
	// any other validation failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
