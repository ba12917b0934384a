package models

import "time"

// DefaultAvatarID is unlocked for every account from the start
const DefaultAvatarID = "default"

// AvatarProgress tracks points, level, achievements and avatar unlocks.
// Invariant: Level == Points/100 + 1 after every points mutation, and
// CurrentAvatar is always a member of UnlockedAvatars.
type AvatarProgress struct {
	Level           int           `json:"level"`
	Points          int           `json:"points"`
	Achievements    []Achievement `json:"achievements"`
	CurrentAvatar   string        `json:"currentAvatar"`
	UnlockedAvatars []string      `json:"unlockedAvatars"`
}

// NewAvatarProgress returns the progress a fresh account starts with
func NewAvatarProgress() AvatarProgress {
	return AvatarProgress{
		Level:           1,
		CurrentAvatar:   DefaultAvatarID,
		UnlockedAvatars: []string{DefaultAvatarID},
	}
}

// IsUnlocked reports whether the given avatar has been unlocked
func (p *AvatarProgress) IsUnlocked(avatarID string) bool {
	for _, id := range p.UnlockedAvatars {
		if id == avatarID {
			return true
		}
	}
	return false
}

// Achievement is an earned badge. Achievements are append-only and never
// mutated once recorded.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	Icon        string    `json:"icon,omitempty"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// AvatarOption is a static catalog entry, not mutable state
type AvatarOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Emoji         string `json:"emoji"`
	RequiredLevel int    `json:"requiredLevel"`
}

// AvatarState is the computed visibility state of a catalog entry for a
// given progress. It is derived at read time and never stored.
type AvatarState string

const (
	AvatarEquipped  AvatarState = "equipped"
	AvatarUnlocked  AvatarState = "unlocked"
	AvatarAvailable AvatarState = "available"
	AvatarLocked    AvatarState = "locked"
)
