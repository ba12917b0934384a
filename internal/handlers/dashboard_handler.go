package handlers

import (
	"net/http"

	"tutorbuddy/internal/models"
	"tutorbuddy/internal/progression"
	"tutorbuddy/internal/store"
)

// DashboardHandler serves the landing view: greeting, subjects,
// progression summary and the tutor-time status
type DashboardHandler struct {
	store *store.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// Get handles GET /dashboard. Loading the dashboard re-evaluates the
// tutor-time gate, so the flag shown is current.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	active := h.store.CheckTutorTime()
	user := h.store.User()
	avatar := h.store.Avatar()

	name := ""
	if user != nil {
		name = user.DisplayName()
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"name":              name,
		"role":              h.store.Role(),
		"subjects":          models.Subjects,
		"avatar":            avatar,
		"pointsToNextLevel": progression.PointsToNextLevel(avatar.Points),
		"conversationCount": len(h.store.Conversations()),
		"tutorTimeActive":   active,
		"settings":          h.store.Settings(),
	})
}
