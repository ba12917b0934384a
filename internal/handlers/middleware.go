package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"tutorbuddy/internal/models"
	"tutorbuddy/internal/security"
	"tutorbuddy/internal/store"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const SessionContextKey ContextKey = "session"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokens  *security.TokenIssuer
	store   *store.Store
	limiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokens *security.TokenIssuer, s *store.Store, limiter *security.RateLimiter) *Middleware {
	return &Middleware{tokens: tokens, store: s, limiter: limiter}
}

// RequireAuth verifies the session cookie against the signing key and the
// active session. A stale token from a previous session is rejected once
// the store no longer knows its user.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(security.SessionCookieName)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
			return
		}

		claims, err := m.tokens.Verify(cookie.Value)
		if err != nil {
			http.SetCookie(w, security.CreateDeleteCookie(r))
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "Invalid session token", err)
			return
		}

		user := m.store.User()
		if !m.store.IsAuthenticated() || user == nil || user.ID != claims.UserID {
			http.SetCookie(w, security.CreateDeleteCookie(r))
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// RequireGuardian allows only sessions running in the guardian role
func (m *Middleware) RequireGuardian(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims := GetSessionFromContext(r.Context())
		if claims == nil || claims.Role != models.RoleGuardian {
			respondWithError(w, http.StatusForbidden, ErrGuardianOnly, "", nil)
			return
		}
		next(w, r)
	})
}

// RateLimit rejects clients that exceed their request budget
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.limiter.Allow(ip) {
			respondWithError(w, http.StatusTooManyRequests, ErrTooManyRequests, "", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetSessionFromContext retrieves the verified session claims
func GetSessionFromContext(ctx context.Context) *security.SessionClaims {
	claims, ok := ctx.Value(SessionContextKey).(*security.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
