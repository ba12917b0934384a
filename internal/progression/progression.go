// Package progression converts accumulated points into levels and derives
// the unlock state of each avatar in the catalog.
package progression

import "tutorbuddy/internal/models"

// PointsPerLevel is the fixed width of every level band
const PointsPerLevel = 100

// Level maps a point total to a level. Level thresholds sit at exact
// multiples of PointsPerLevel: 0 points is level 1, 100 is level 2, and
// so on. Negative totals are treated as zero.
func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// PointsToNextLevel returns how many points remain until the next level
func PointsToNextLevel(points int) int {
	if points < 0 {
		points = 0
	}
	return PointsPerLevel - points%PointsPerLevel
}

// Eligible reports whether the progress has reached the option's level
func Eligible(option models.AvatarOption, progress models.AvatarProgress) bool {
	return progress.Level >= option.RequiredLevel
}

// AvatarView pairs a catalog option with its computed state
type AvatarView struct {
	Option models.AvatarOption `json:"option"`
	State  models.AvatarState  `json:"state"`
}

// StateOf computes the visible state of a single catalog option:
// equipped when it is the current avatar, unlocked when owned but not worn,
// available when the required level is reached but it has not been claimed,
// locked otherwise. The state is derived, never stored.
func StateOf(option models.AvatarOption, progress models.AvatarProgress) models.AvatarState {
	switch {
	case progress.CurrentAvatar == option.ID:
		return models.AvatarEquipped
	case progress.IsUnlocked(option.ID):
		return models.AvatarUnlocked
	case Eligible(option, progress):
		return models.AvatarAvailable
	default:
		return models.AvatarLocked
	}
}

// States computes the view for every option in the catalog, in catalog order
func States(progress models.AvatarProgress) []AvatarView {
	views := make([]AvatarView, len(Catalog))
	for i, option := range Catalog {
		views[i] = AvatarView{Option: option, State: StateOf(option, progress)}
	}
	return views
}

// FindOption looks up a catalog entry by ID
func FindOption(avatarID string) (models.AvatarOption, bool) {
	for _, option := range Catalog {
		if option.ID == avatarID {
			return option, true
		}
	}
	return models.AvatarOption{}, false
}
