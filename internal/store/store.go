// Package store is the single source of truth for identity, settings,
// progression and conversation data. All mutation goes through Store
// methods; UI-facing layers only read derived views.
package store

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"tutorbuddy/internal/gate"
	"tutorbuddy/internal/models"
	"tutorbuddy/internal/progression"
)

var (
	ErrNegativePoints = errors.New("points can only increase")
	ErrUnknownAvatar  = errors.New("avatar not in catalog")
	ErrAvatarLocked   = errors.New("avatar level not reached")
)

// Recorder persists the durable subset of store state as a versioned record
type Recorder interface {
	SaveState(version int, payload []byte) error
	LoadState() ([]byte, int, error)
}

// Store holds all session state. Persisted fields survive a restart;
// the session log, transcript and activity flags do not.
type Store struct {
	mu       sync.Mutex
	recorder Recorder
	now      func() time.Time
	seedDemo bool

	// persisted
	user            *models.UserIdentity
	isAuthenticated bool
	role            models.Role
	settings        models.Settings
	avatar          models.AvatarProgress
	conversations   []models.Conversation

	// transient
	sessionLog        []models.Message
	transcript        string
	isAIResponding    bool
	isListening       bool
	isSpeaking        bool
	isTutorTimeActive bool
}

// New creates a store backed by the given recorder. The recorder may be
// nil, in which case state lives only in memory. When seedDemo is set,
// login initializes progression and history from the demo dataset.
func New(recorder Recorder, seedDemo bool) *Store {
	return &Store{
		recorder: recorder,
		now:      time.Now,
		seedDemo: seedDemo,
		settings: models.DefaultSettings(),
		avatar:   models.NewAvatarProgress(),
	}
}

// Load restores the persisted subset from the recorder, applying schema
// migrations when the stored record predates the current version.
func (s *Store) Load() error {
	if s.recorder == nil {
		return nil
	}

	payload, version, err := s.recorder.LoadState()
	if err != nil {
		return err
	}
	if payload == nil {
		return nil
	}

	state, err := decodeState(payload, version)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = state.User
	s.isAuthenticated = state.IsAuthenticated
	s.role = state.Role
	s.settings = state.Settings
	s.avatar = state.Avatar
	s.conversations = state.Conversations
	return nil
}

// Login installs the identity and marks the session authenticated.
// Demo mode performs no credential check; progression and history are
// reset from the seed dataset, overwriting any prior session data.
func (s *Store) Login(identity models.UserIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &identity
	s.isAuthenticated = true
	s.role = identity.Role

	if s.seedDemo {
		s.conversations, s.avatar = demoData(s.now())
	} else {
		s.conversations = nil
		s.avatar = models.NewAvatarProgress()
	}

	s.persist()
}

// Logout clears identity, authentication and the in-progress session log.
// Settings, progression and committed conversations are retained. An
// uncommitted session log is discarded, not committed.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.isAuthenticated = false
	s.role = ""
	s.sessionLog = nil
	s.transcript = ""

	s.persist()
}

// UpdateSettings merges the partial update into settings. The store does
// not validate values; callers validate before dispatching.
func (s *Store) UpdateSettings(update models.SettingsUpdate) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.TutorTimeStart != nil {
		s.settings.TutorTimeStart = *update.TutorTimeStart
	}
	if update.TutorTimeEnd != nil {
		s.settings.TutorTimeEnd = *update.TutorTimeEnd
	}
	if update.Language != nil {
		s.settings.Language = *update.Language
	}
	if update.VoiceEnabled != nil {
		s.settings.VoiceEnabled = *update.VoiceEnabled
	}
	if update.AdultModeEnabled != nil {
		s.settings.AdultModeEnabled = *update.AdultModeEnabled
	}

	s.persist()
	return s.settings
}

// AppendMessage adds a message to the in-progress session log, assigning
// it an ID and timestamp. The log is unbounded within a session and is
// not persisted until commit.
func (s *Store) AppendMessage(msg models.Message) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = uuid.New().String()
	msg.Timestamp = s.now()
	s.sessionLog = append(s.sessionLog, msg)
	return msg
}

// CommitConversation promotes the session log into a permanent
// conversation and clears the log. Committing an empty log is a no-op
// and returns nil.
func (s *Store) CommitConversation() *models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessionLog) == 0 {
		return nil
	}

	subject := s.sessionLog[0].Subject
	if subject == "" {
		subject = models.SubjectGeneral
	}

	conversation := models.Conversation{
		ID:       uuid.New().String(),
		Subject:  subject,
		Date:     s.now(),
		Messages: s.sessionLog,
	}

	s.conversations = append(s.conversations, conversation)
	s.sessionLog = nil
	s.persist()

	return &conversation
}

// RemoveConversation deletes a committed conversation by ID and reports
// whether one was removed.
func (s *Store) RemoveConversation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, conversation := range s.conversations {
		if conversation.ID == id {
			s.conversations = append(s.conversations[:i], s.conversations[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// AddPoints increases the point total and recomputes the level. Points
// are monotonic through this path; negative amounts are rejected.
func (s *Store) AddPoints(n int) error {
	if n < 0 {
		return ErrNegativePoints
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.avatar.Points += n
	s.avatar.Level = progression.Level(s.avatar.Points)
	s.persist()
	return nil
}

// AddAchievement appends an achievement, assigning ID and unlock time.
// Achievements are not deduplicated by title.
func (s *Store) AddAchievement(a models.Achievement) models.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.New().String()
	a.UnlockedAt = s.now()
	s.avatar.Achievements = append(s.avatar.Achievements, a)
	s.persist()
	return a
}

// UnlockAvatar adds an avatar to the unlocked set. Unlocking an already
// unlocked avatar is a no-op.
func (s *Store) UnlockAvatar(avatarID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.avatar.IsUnlocked(avatarID) {
		return
	}
	s.avatar.UnlockedAvatars = append(s.avatar.UnlockedAvatars, avatarID)
	s.persist()
}

// SetCurrentAvatar equips an avatar without checking the unlocked set.
// SelectAvatar is the checked path; this remains for callers that have
// already verified eligibility.
func (s *Store) SetCurrentAvatar(avatarID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.avatar.CurrentAvatar = avatarID
	s.persist()
}

// SelectAvatar unlocks (when the required level is reached) and equips an
// avatar as one atomic operation. It fails without mutating state when the
// avatar is unknown or its level has not been reached.
func (s *Store) SelectAvatar(avatarID string) (models.AvatarState, error) {
	option, ok := progression.FindOption(avatarID)
	if !ok {
		return "", ErrUnknownAvatar
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.avatar.IsUnlocked(avatarID) {
		if !progression.Eligible(option, s.avatar) {
			return "", ErrAvatarLocked
		}
		s.avatar.UnlockedAvatars = append(s.avatar.UnlockedAvatars, avatarID)
	}

	s.avatar.CurrentAvatar = avatarID
	s.persist()
	return models.AvatarEquipped, nil
}

// CheckTutorTime evaluates the tutor-time window against the current
// wall clock, updates the cached flag, and returns the result.
func (s *Store) CheckTutorTime() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := gate.Window{Start: s.settings.TutorTimeStart, End: s.settings.TutorTimeEnd}
	s.isTutorTimeActive = window.Active(s.now())
	return s.isTutorTimeActive
}

// SetAIResponding sets the AI-activity flag
func (s *Store) SetAIResponding(responding bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isAIResponding = responding
}

// SetListening sets the voice-input flag
func (s *Store) SetListening(listening bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isListening = listening
	if !listening {
		s.transcript = ""
	}
}

// SetSpeaking sets the voice-output flag
func (s *Store) SetSpeaking(speaking bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSpeaking = speaking
}

// SetTranscript replaces the current voice transcript; the latest
// transcript is treated as the current input text.
func (s *Store) SetTranscript(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = text
}

// User returns the signed-in identity, or nil
func (s *Store) User() *models.UserIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// IsAuthenticated reports whether a session is active
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAuthenticated
}

// Role returns the active role, or empty when signed out
func (s *Store) Role() models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// Settings returns a copy of the current settings
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Avatar returns a copy of the progression state
func (s *Store) Avatar() models.AvatarProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyAvatar(s.avatar)
}

// Conversations returns the committed history, newest last
func (s *Store) Conversations() []models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// Conversation looks up a committed conversation by ID
func (s *Store) Conversation(id string) (models.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conversation := range s.conversations {
		if conversation.ID == id {
			return conversation, true
		}
	}
	return models.Conversation{}, false
}

// SessionLog returns a copy of the in-progress message list
func (s *Store) SessionLog() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.sessionLog))
	copy(out, s.sessionLog)
	return out
}

// Transcript returns the latest voice transcript
func (s *Store) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript
}

// Flags is a snapshot of the transient activity flags
type Flags struct {
	AIResponding    bool `json:"aiResponding"`
	Listening       bool `json:"listening"`
	Speaking        bool `json:"speaking"`
	TutorTimeActive bool `json:"tutorTimeActive"`
}

// ActivityFlags returns a snapshot of the transient flags. The tutor-time
// flag reflects the last CheckTutorTime evaluation, which may be up to one
// polling interval stale.
func (s *Store) ActivityFlags() Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Flags{
		AIResponding:    s.isAIResponding,
		Listening:       s.isListening,
		Speaking:        s.isSpeaking,
		TutorTimeActive: s.isTutorTimeActive,
	}
}

// persist snapshots the durable subset through the recorder. Callers must
// hold the mutex. Write failures are logged and otherwise ignored; losing
// the most recent mutation on a crash is an accepted risk.
func (s *Store) persist() {
	if s.recorder == nil {
		return
	}

	payload, err := encodeState(persistedState{
		User:            s.user,
		IsAuthenticated: s.isAuthenticated,
		Role:            s.role,
		Settings:        s.settings,
		Avatar:          s.avatar,
		Conversations:   s.conversations,
	})
	if err != nil {
		log.Printf("Error encoding state record: %v", err)
		return
	}

	if err := s.recorder.SaveState(schemaVersion, payload); err != nil {
		log.Printf("Error saving state record: %v", err)
	}
}

func copyAvatar(a models.AvatarProgress) models.AvatarProgress {
	copied := a
	copied.Achievements = append([]models.Achievement(nil), a.Achievements...)
	copied.UnlockedAvatars = append([]string(nil), a.UnlockedAvatars...)
	return copied
}
