package handlers

import (
	"errors"
	"net/http"
	"time"

	"tutorbuddy/internal/models"
	"tutorbuddy/internal/security"
	"tutorbuddy/internal/service"
	"tutorbuddy/internal/validation"
)

// AuthHandler serves the sign-up, sign-in and sign-out endpoints
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type authResponse struct {
	User models.UserIdentity `json:"user"`
}

// SignUp handles POST /signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var input service.SignUpInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	identity, token, err := h.auth.SignUp(input)
	if err != nil {
		status := http.StatusBadRequest
		var verr validation.ValidationError
		switch {
		case errors.As(err, &verr):
			respondWithError(w, status, verr.Error(), "", nil)
		case errors.Is(err, service.ErrPasswordMismatch) || errors.Is(err, service.ErrInvalidRole):
			respondWithError(w, status, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Sign-up failed", err)
		}
		return
	}

	h.setSession(w, r, token)
	respondWithJSON(w, http.StatusCreated, authResponse{User: identity})
}

// SignIn handles POST /login
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var input service.SignInInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	identity, token, err := h.auth.SignIn(input)
	if err != nil {
		if errors.Is(err, service.ErrMissingCredentials) || errors.Is(err, service.ErrInvalidRole) {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Sign-in failed", err)
		}
		return
	}

	h.setSession(w, r, token)
	respondWithJSON(w, http.StatusOK, authResponse{User: identity})
}

// SignOut handles POST /logout
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.auth.SignOut()
	http.SetCookie(w, security.CreateDeleteCookie(r))
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) setSession(w http.ResponseWriter, r *http.Request, token string) {
	expires := time.Now().Add(h.auth.TokenDuration())
	http.SetCookie(w, security.CreateSessionCookie(r, token, expires))
}
