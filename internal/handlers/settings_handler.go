package handlers

import (
	"net/http"

	"tutorbuddy/internal/audio"
	"tutorbuddy/internal/i18n"
	"tutorbuddy/internal/models"
	"tutorbuddy/internal/store"
	"tutorbuddy/internal/validation"
)

// SettingsHandler serves guardian preferences and the language catalog
type SettingsHandler struct {
	store   *store.Store
	speaker *audio.Speaker
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(s *store.Store, speaker *audio.Speaker) *SettingsHandler {
	return &SettingsHandler{store: s, speaker: speaker}
}

// Get handles GET /settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.Settings())
}

// Update handles PUT /settings. All fields are validated before any are
// applied; the tutor-time gate is re-evaluated immediately so a narrowed
// window takes effect without waiting for the next poll.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var update models.SettingsUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	if update.TutorTimeStart != nil {
		if err := validation.ValidateClock("tutorTimeStart", *update.TutorTimeStart); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
	}
	if update.TutorTimeEnd != nil {
		if err := validation.ValidateClock("tutorTimeEnd", *update.TutorTimeEnd); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
	}
	if update.Language != nil {
		if err := validation.ValidateLanguage(*update.Language); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
			return
		}
	}

	settings := h.store.UpdateSettings(update)
	active := h.store.CheckTutorTime()

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"settings":        settings,
		"tutorTimeActive": active,
	})
}

// VoicePreview handles POST /settings/voice-preview: synthesizes the
// sample phrase for a language so a guardian can hear a voice before
// saving it. An empty language previews the current setting.
func (h *SettingsHandler) VoicePreview(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Language string `json:"language"`
	}
	if err := decodeJSON(r, &input); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", err)
		return
	}

	language := input.Language
	if language == "" {
		language = h.store.Settings().Language
	}
	if err := validation.ValidateLanguage(language); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	filename, err := h.speaker.PreviewVoice(r.Context(), language)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Could not play audio", "Voice preview failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"audioUrl": "/audio/" + filename,
		"locale":   i18n.Locale(language),
	})
}

// Languages handles GET /languages
func (h *SettingsHandler) Languages(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"languages": i18n.Supported(),
		"current":   h.store.Settings().Language,
	})
}
