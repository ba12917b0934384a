package handlers

import (
	"errors"
	"net/http"

	"tutorbuddy/internal/progression"
	"tutorbuddy/internal/store"
)

// AvatarHandler serves the avatar catalog and selection
type AvatarHandler struct {
	store *store.Store
}

// NewAvatarHandler creates a new avatar handler
func NewAvatarHandler(s *store.Store) *AvatarHandler {
	return &AvatarHandler{store: s}
}

// List handles GET /avatars: the catalog with each entry's computed state
// for the current progress
func (h *AvatarHandler) List(w http.ResponseWriter, r *http.Request) {
	progress := h.store.Avatar()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"avatars":  progression.States(progress),
		"progress": progress,
	})
}

// Select handles POST /avatars/select: unlock-if-eligible and equip in
// one step
func (h *AvatarHandler) Select(w http.ResponseWriter, r *http.Request) {
	var input struct {
		AvatarID string `json:"avatarId"`
	}
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	if _, err := h.store.SelectAvatar(input.AvatarID); err != nil {
		switch {
		case errors.Is(err, store.ErrUnknownAvatar):
			respondWithError(w, http.StatusNotFound, "No such avatar", "", nil)
		case errors.Is(err, store.ErrAvatarLocked):
			respondWithError(w, http.StatusForbidden, "Avatar is still locked", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Avatar select failed", err)
		}
		return
	}

	progress := h.store.Avatar()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"avatars":  progression.States(progress),
		"progress": progress,
	})
}
