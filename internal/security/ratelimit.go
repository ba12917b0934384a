package security

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter caps requests per client IP with a fixed-window token
// bucket. Chat and auth endpoints sit behind it so a runaway client
// cannot hammer the tutor simulation.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*bucket
	limit   int
	window  time.Duration
}

type bucket struct {
	remaining int
	resetAt   time.Time
}

// NewRateLimiter allows limit requests per window for each client IP
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*bucket),
		limit:   limit,
		window:  window,
	}
	go rl.sweep()
	return rl
}

// Allow reports whether a request from ip fits within its budget
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.clients[ip]
	if !ok || now.After(b.resetAt) {
		b = &bucket{remaining: rl.limit, resetAt: now.Add(rl.window)}
		rl.clients[ip] = b
	}

	if b.remaining == 0 {
		return false
	}
	b.remaining--
	return true
}

// sweep drops buckets whose window has long expired so the map does not
// grow without bound
func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		rl.mu.Lock()
		for ip, b := range rl.clients {
			if now.Sub(b.resetAt) > rl.window {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// GetClientIP extracts the client IP from the request, honoring proxy
// headers before falling back to the socket address
func GetClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
