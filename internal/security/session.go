package security

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie that carries the signed session token
const SessionCookieName = "tutorbuddy_session"

// IsSecureRequest determines if the request is over HTTPS. Checks the TLS
// connection, X-Forwarded-Proto (for reverse proxies), and URL scheme.
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	if r.URL.Scheme == "https" {
		return true
	}
	return false
}

// CreateSessionCookie creates a session cookie with proper security flags.
// The Secure flag follows the request scheme so local development over
// plain HTTP still works.
func CreateSessionCookie(r *http.Request, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}

// CreateDeleteCookie creates a cookie that clears the session cookie
func CreateDeleteCookie(r *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
	}
}
