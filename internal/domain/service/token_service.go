package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of a session token.
type Claims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and validates the cookie that binds a browser to a session.
type TokenService interface {
	// Issue signs a token for sessionID.
	Issue(sessionID, role string) (string, error)

	// Validate checks the signature and expiry of a token.
	Validate(tokenString string) (*Claims, error)

	// TTL returns how long issued tokens stay valid.
	TTL() time.Duration
}
