package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"tutorbuddy/internal/models"
	"tutorbuddy/internal/store"
)

// HistoryHandler serves the committed conversation archive
type HistoryHandler struct {
	store *store.Store
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(s *store.Store) *HistoryHandler {
	return &HistoryHandler{store: s}
}

// List handles GET /history
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"conversations": h.store.Conversations(),
	})
}

// Get handles GET /history/{id}. With ?format=text it renders a plain
// transcript instead of JSON.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	conversation, ok := h.store.Conversation(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, ErrNotFound, "", nil)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, renderTranscript(conversation))
		return
	}

	respondWithJSON(w, http.StatusOK, conversation)
}

// Delete handles POST /history/{id}/delete
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.store.RemoveConversation(id) {
		respondWithError(w, http.StatusNotFound, ErrNotFound, "", nil)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// renderTranscript formats a conversation for export
func renderTranscript(conversation models.Conversation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\nDate: %s\n\n", conversation.Subject, conversation.Date.Format("2006-01-02 15:04"))

	for _, msg := range conversation.Messages {
		speaker := "Student"
		if msg.Role == models.MessageAI {
			speaker = "AI Tutor"
		}
		content := msg.Content
		if msg.Image != "" {
			content += " [image attached]"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, content)
	}
	return b.String()
}
