package progression

import "tutorbuddy/internal/models"

// Catalog is the fixed set of avatar tiers. Levels 7 and 9 intentionally
// grant no new avatar.
var Catalog = []models.AvatarOption{
	{ID: "default", Name: "Student", Emoji: "👶", RequiredLevel: 1},
	{ID: "scholar", Name: "Young Scholar", Emoji: "🧑‍🎓", RequiredLevel: 2},
	{ID: "scientist", Name: "Little Scientist", Emoji: "🧑‍🔬", RequiredLevel: 3},
	{ID: "artist", Name: "Creative Artist", Emoji: "🧑‍🎨", RequiredLevel: 4},
	{ID: "explorer", Name: "Adventure Explorer", Emoji: "🧭", RequiredLevel: 5},
	{ID: "wizard", Name: "Knowledge Wizard", Emoji: "🧙‍♂️", RequiredLevel: 6},
	{ID: "superhero", Name: "Learning Hero", Emoji: "🦸‍♂️", RequiredLevel: 8},
	{ID: "astronaut", Name: "Space Explorer", Emoji: "👨‍🚀", RequiredLevel: 10},
}
