package store

import (
	"encoding/json"
	"fmt"

	"tutorbuddy/internal/models"
)

// schemaVersion is the version written with every state record. Bump it
// when persistedState changes shape and add a migration below.
const schemaVersion = 2

// persistedState is the durable subset of store state. Session log,
// transcript and activity flags are deliberately absent.
type persistedState struct {
	User            *models.UserIdentity  `json:"user"`
	IsAuthenticated bool                  `json:"isAuthenticated"`
	Role            models.Role           `json:"userRole"`
	Settings        models.Settings       `json:"settings"`
	Avatar          models.AvatarProgress `json:"avatar"`
	Conversations   []models.Conversation `json:"conversations"`
}

func encodeState(state persistedState) ([]byte, error) {
	return json.Marshal(state)
}

// decodeState parses a stored record, stepping it through migrations when
// it was written by an older schema. Records from a newer schema are
// rejected rather than guessed at.
func decodeState(payload []byte, version int) (persistedState, error) {
	var state persistedState

	if version > schemaVersion {
		return state, fmt.Errorf("state record version %d is newer than supported version %d", version, schemaVersion)
	}

	if err := json.Unmarshal(payload, &state); err != nil {
		return state, fmt.Errorf("failed to decode state record: %w", err)
	}

	for v := version; v < schemaVersion; v++ {
		migrate, ok := stateMigrations[v]
		if !ok {
			return state, fmt.Errorf("no migration from state record version %d", v)
		}
		state = migrate(state)
	}

	return state, nil
}

// stateMigrations maps a record version to the function that lifts it to
// the next version. Migrations run in sequence on load; the record is
// rewritten at the current version on the next save.
var stateMigrations = map[int]func(persistedState) persistedState{
	// v1 records predate the always-on child safety flag and could carry
	// an empty unlocked list.
	1: func(state persistedState) persistedState {
		state.Settings.ChildSafetyMode = true
		if len(state.Avatar.UnlockedAvatars) == 0 {
			state.Avatar.UnlockedAvatars = []string{models.DefaultAvatarID}
		}
		return state
	},
}
