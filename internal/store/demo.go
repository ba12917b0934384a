package store

import (
	"time"

	"github.com/google/uuid"

	"tutorbuddy/internal/models"
)

// homeworkImage is a placeholder homework photo used by the demo history
const homeworkImage = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMjAwIiBoZWlnaHQ9IjEwMCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj48cmVjdCB3aWR0aD0iMTAwJSIgaGVpZ2h0PSIxMDAlIiBmaWxsPSIjZGRkIi8+PHRleHQgeD0iNTAlIiB5PSI1MCUiIGZvbnQtZmFtaWx5PSJBcmlhbCIgZm9udC1zaXplPSIxNCIgZmlsbD0iIzk5OSIgdGV4dC1hbmNob3I9Im1pZGRsZSIgZHk9Ii4zZW0iPlNhbXBsZSBIb21ld29yayBJbWFnZTwvdGV4dD48L3N2Zz4="

// demoData builds the seed dataset installed at login in demo mode: three
// recent conversations, a handful of achievements, and a level-3 avatar so
// the unlock flow is immediately visible.
func demoData(now time.Time) ([]models.Conversation, models.AvatarProgress) {
	mathStart := now.Add(-2 * 24 * time.Hour)
	scienceStart := now.Add(-24 * time.Hour)
	englishStart := now.Add(-3 * time.Hour)

	conversations := []models.Conversation{
		{
			ID:      uuid.New().String(),
			Subject: models.SubjectMath,
			Date:    mathStart,
			Messages: []models.Message{
				demoMessage(models.MessageUser, "Can you help me with fractions?", models.SubjectMath, mathStart),
				demoMessage(models.MessageAI, "Of course! Fractions are really fun once you understand them. Think of a fraction like a pizza that's been cut into pieces. The bottom number tells us how many pieces the pizza was cut into, and the top number tells us how many pieces we have. What specific part of fractions would you like to work on?", models.SubjectMath, mathStart.Add(30*time.Second)),
				demoMessage(models.MessageUser, "How do I add fractions?", models.SubjectMath, mathStart.Add(60*time.Second)),
				demoMessage(models.MessageAI, "Great question! To add fractions, we need to make sure they have the same bottom number (called the denominator). It's like making sure both pizzas are cut into the same number of pieces before we can count all our slices together!\n\nHere's a fun challenge for you: If you have 1/4 of a pizza and your friend gives you 1/4 more, how much pizza do you have in total?\n\nTake your time to think about it! 🤔", models.SubjectMath, mathStart.Add(90*time.Second)),
				demoMessage(models.MessageUser, "2/4?", models.SubjectMath, mathStart.Add(120*time.Second)),
				demoMessage(models.MessageAI, "🎉 Excellent! You got it right! Yes, 1/4 + 1/4 = 2/4, which can also be simplified to 1/2. You're really understanding this concept well!\n\nYou're doing amazing! 🌟", models.SubjectMath, mathStart.Add(125*time.Second)),
			},
		},
		{
			ID:      uuid.New().String(),
			Subject: models.SubjectScience,
			Date:    scienceStart,
			Messages: []models.Message{
				demoMessage(models.MessageUser, "Why do plants need sunlight?", models.SubjectScience, scienceStart),
				demoMessage(models.MessageAI, "That's a fantastic question! Plants need sunlight because they use it to make their own food through a process called photosynthesis. It's like plants have their own kitchen inside their leaves!\n\nThink of sunlight as the energy that powers the plant's food-making process. Just like you need energy to run and play, plants need energy from the sun to grow and stay healthy.", models.SubjectScience, scienceStart.Add(30*time.Second)),
				demoMessage(models.MessageUser, "What happens if plants don't get sunlight?", models.SubjectScience, scienceStart.Add(60*time.Second)),
				demoMessage(models.MessageAI, "Great follow-up question! If plants don't get enough sunlight, they can't make enough food for themselves. They might become weak, their leaves might turn yellow, and they could eventually die.\n\nIt's like if you didn't eat enough food - you'd feel weak and tired. Plants feel the same way without their sunlight!\n\nThat's the kind of curiosity that makes great scientists! ⭐", models.SubjectScience, scienceStart.Add(90*time.Second)),
			},
		},
		{
			ID:      uuid.New().String(),
			Subject: models.SubjectEnglish,
			Date:    englishStart,
			Messages: []models.Message{
				demoImageMessage("I uploaded an image for help", homeworkImage, models.SubjectEnglish, englishStart),
				demoMessage(models.MessageAI, "I can see your homework! It looks like an English problem. Can you tell me what specific part you're having trouble with?", models.SubjectEnglish, englishStart.Add(10*time.Second)),
				demoMessage(models.MessageUser, "I need to write a story about adventure", models.SubjectEnglish, englishStart.Add(30*time.Second)),
				demoMessage(models.MessageAI, "How exciting! Adventure stories are some of the most fun to write and read. Let me help you brainstorm some ideas.\n\nFirst, let's think about the main character. Who is going on this adventure? It could be a brave kid like you, a magical creature, or even an animal!\n\nWhat kind of adventure are you most interested in writing about? A treasure hunt? A journey to a magical land? Or maybe exploring somewhere new?", models.SubjectEnglish, englishStart.Add(45*time.Second)),
			},
		},
	}

	avatar := models.AvatarProgress{
		Level:  3,
		Points: 275,
		Achievements: []models.Achievement{
			demoAchievement("First Steps!", "Completed your first chat session", 10, "🎯", now.Add(-3*24*time.Hour)),
			demoAchievement("Math Wizard!", "Solved 5 math problems correctly", 25, "🧮", now.Add(-2*24*time.Hour)),
			demoAchievement("Curious Mind!", "Asked 10 great questions", 15, "🤔", now.Add(-24*time.Hour)),
			demoAchievement("Science Explorer!", "Learned about plants and photosynthesis", 20, "🔬", now.Add(-24*time.Hour)),
		},
		CurrentAvatar:   "scholar",
		UnlockedAvatars: []string{"default", "scholar", "scientist"},
	}

	return conversations, avatar
}

func demoMessage(role models.MessageRole, content string, subject models.Subject, at time.Time) models.Message {
	return models.Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Subject:   subject,
		Timestamp: at,
	}
}

func demoImageMessage(content, image string, subject models.Subject, at time.Time) models.Message {
	msg := demoMessage(models.MessageUser, content, subject, at)
	msg.Image = image
	return msg
}

func demoAchievement(title, description string, points int, icon string, at time.Time) models.Achievement {
	return models.Achievement{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Points:      points,
		Icon:        icon,
		UnlockedAt:  at,
	}
}
