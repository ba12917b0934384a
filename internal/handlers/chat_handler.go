package handlers

import (
	"errors"
	"net/http"

	"tutorbuddy/internal/audio"
	"tutorbuddy/internal/models"
	"tutorbuddy/internal/service"
	"tutorbuddy/internal/store"
)

// ChatHandler serves the tutoring session endpoints
type ChatHandler struct {
	chat    *service.ChatService
	store   *store.Store
	speaker *audio.Speaker
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService, s *store.Store, speaker *audio.Speaker) *ChatHandler {
	return &ChatHandler{chat: chat, store: s, speaker: speaker}
}

// Start handles POST /chat/start
func (h *ChatHandler) Start(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Subject models.Subject `json:"subject"`
	}
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	if err := h.chat.StartSession(input.Subject); err != nil {
		if errors.Is(err, service.ErrOutsideTutorTime) {
			respondWithError(w, http.StatusForbidden, ErrNotTutorTime, "", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Session start failed", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"subject": input.Subject,
		"avatar":  h.store.Avatar(),
	})
}

// Message handles POST /chat/message
func (h *ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Content string         `json:"content"`
		Image   string         `json:"image"`
		Subject models.Subject `json:"subject"`
	}
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}
	if input.Content == "" && input.Image == "" {
		respondWithError(w, http.StatusBadRequest, "Message needs text or an image", "", nil)
		return
	}

	exchange, err := h.chat.SendMessage(r.Context(), input.Content, input.Image, input.Subject)
	if err != nil {
		if errors.Is(err, service.ErrOutsideTutorTime) {
			respondWithError(w, http.StatusForbidden, ErrNotTutorTime, "", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Message failed", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"exchange":  exchange,
		"challenge": h.chat.PendingChallenge(),
		"avatar":    h.store.Avatar(),
	})
}

// Current handles GET /chat, returning the in-progress session
func (h *ChatHandler) Current(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"messages":   h.store.SessionLog(),
		"transcript": h.store.Transcript(),
		"challenge":  h.chat.PendingChallenge(),
		"flags":      h.store.ActivityFlags(),
	})
}

// Commit handles POST /chat/commit, ending the session
func (h *ChatHandler) Commit(w http.ResponseWriter, r *http.Request) {
	conversation := h.chat.EndSession()
	if conversation == nil {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"conversation": nil})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"conversation": conversation})
}

// Listen handles POST /chat/listen, toggling voice capture. Turning
// listening off discards the transcript.
func (h *ChatHandler) Listen(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Listening bool `json:"listening"`
	}
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	h.store.SetListening(input.Listening)
	respondWithJSON(w, http.StatusOK, h.store.ActivityFlags())
}

// Transcript handles POST /chat/transcript, replacing the current voice
// transcript with the latest recognition result
func (h *ChatHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Transcript string `json:"transcript"`
	}
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	h.store.SetTranscript(input.Transcript)
	respondWithJSON(w, http.StatusOK, map[string]string{"transcript": input.Transcript})
}

// Speak handles POST /chat/speak: synthesizes the text in the session
// language and returns the audio file name. A stop request cancels any
// in-flight synthesis instead.
func (h *ChatHandler) Speak(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Text        string             `json:"text"`
		Stop        bool               `json:"stop"`
		Educational bool               `json:"educational"`
		Options     audio.SpeakOptions `json:"options"`
	}
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	if input.Stop {
		h.speaker.Stop()
		h.store.SetSpeaking(false)
		respondWithJSON(w, http.StatusOK, h.store.ActivityFlags())
		return
	}

	if input.Text == "" {
		respondWithError(w, http.StatusBadRequest, "Nothing to speak", "", nil)
		return
	}

	settings := h.store.Settings()
	if !settings.VoiceEnabled {
		respondWithError(w, http.StatusForbidden, "Voice is disabled in settings", "", nil)
		return
	}

	h.store.SetSpeaking(true)
	defer h.store.SetSpeaking(false)

	var filename string
	var err error
	if input.Educational {
		filename, err = h.speaker.SpeakEducational(r.Context(), input.Text, settings.Language, input.Options)
	} else {
		filename, err = h.speaker.Speak(r.Context(), input.Text, settings.Language)
	}
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Could not play audio", "TTS failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"audioUrl": "/audio/" + filename,
	})
}
