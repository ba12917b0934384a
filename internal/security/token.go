// Package security covers session tokens, password hashing, cookie
// handling and request rate limiting.
package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tutorbuddy/internal/models"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims are the JWT claims carried by the session cookie
type SessionClaims struct {
	UserID string      `json:"uid"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies session tokens. The store holds the
// actual session state; the token only proves who the browser is.
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
}

// NewTokenIssuer creates an issuer with the given signing secret and
// token lifetime
func NewTokenIssuer(secret string, duration time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), duration: duration}
}

// Issue creates a signed session token for the identity
func (t *TokenIssuer) Issue(userID string, role models.Role) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token
func (t *TokenIssuer) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Duration returns the configured token lifetime
func (t *TokenIssuer) Duration() time.Duration {
	return t.duration
}
