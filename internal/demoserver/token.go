package demoserver

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issueToken signs an HS256 token for the authenticated user. The client only
// ever checks that a token is present, but issuing a real one keeps the demo
// faithful to the public API.
func issueToken(secret string, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
