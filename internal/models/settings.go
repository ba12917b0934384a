package models

// Settings holds guardian-controlled preferences. They survive logout and
// are only changed through the store's merge-update operation.
type Settings struct {
	TutorTimeStart   string `json:"tutorTimeStart"` // HH:MM, 24-hour
	TutorTimeEnd     string `json:"tutorTimeEnd"`   // HH:MM, 24-hour
	Language         string `json:"language"`
	VoiceEnabled     bool   `json:"voiceEnabled"`
	AdultModeEnabled bool   `json:"adultModeEnabled"`
	ChildSafetyMode  bool   `json:"childSafetyMode"`
}

// SettingsUpdate carries a partial settings change. Nil fields are left
// untouched by the merge.
type SettingsUpdate struct {
	TutorTimeStart   *string `json:"tutorTimeStart,omitempty"`
	TutorTimeEnd     *string `json:"tutorTimeEnd,omitempty"`
	Language         *string `json:"language,omitempty"`
	VoiceEnabled     *bool   `json:"voiceEnabled,omitempty"`
	AdultModeEnabled *bool   `json:"adultModeEnabled,omitempty"`
}

// DefaultSettings returns the settings a fresh install starts with.
// Child safety mode is always on and has no update field.
func DefaultSettings() Settings {
	return Settings{
		TutorTimeStart:  "09:00",
		TutorTimeEnd:    "15:00",
		Language:        "en",
		ChildSafetyMode: true,
	}
}
