package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	// UserID duplicates the subject under the claim name older clients read.
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues signed, time-bounded bearer tokens.
type TokenService interface {
	// IssueToken creates a signed token whose subject is userID.
	IssueToken(userID string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
