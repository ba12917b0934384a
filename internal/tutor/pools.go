package tutor

import "tutorbuddy/internal/models"

// subjectPool holds the canned material for one subject: keywords that
// mark a message as on-topic, response openers, and practice challenges.
type subjectPool struct {
	keywords   []string
	responses  []string
	challenges []models.Challenge
}

var pools = map[models.Subject]subjectPool{
	models.SubjectMath: {
		keywords: []string{"add", "subtract", "multiply", "divide", "equation", "solve", "calculate"},
		responses: []string{
			"Great question! Let's work through this step by step. Can you tell me what numbers you're working with?",
			"Math is like solving puzzles! Let me help you break this down into smaller pieces.",
			"I love helping with math! Let's start by identifying what operation we need to use.",
			"That's a wonderful math problem! Let me guide you through the solution process.",
		},
		challenges: []models.Challenge{
			{
				Question: "If you have 15 apples and give away 7, how many do you have left?",
				Answer:   "8",
				Hint:     "Think about subtraction: 15 - 7 = ?",
			},
			{
				Question: "What is 6 × 4?",
				Answer:   "24",
				Hint:     "Try adding 6 four times: 6 + 6 + 6 + 6",
			},
		},
	},
	models.SubjectScience: {
		keywords: []string{"experiment", "why", "how", "what happens", "because"},
		responses: []string{
			"Science is all about asking questions! That's a fantastic observation.",
			"Let's explore this together! Science helps us understand the world around us.",
			"Great scientific thinking! Let me help you discover the answer.",
			"That's the kind of curiosity that makes great scientists!",
		},
		challenges: []models.Challenge{
			{
				Question: "What do plants need to grow? Name three things.",
				Answer:   "water, sunlight, nutrients",
				Hint:     "Think about what you see plants getting from their environment",
			},
		},
	},
	models.SubjectEnglish: {
		keywords: []string{"read", "write", "story", "word", "grammar", "spelling"},
		responses: []string{
			"Reading and writing are such important skills! Let me help you with that.",
			"Words are powerful tools! Let's explore this together.",
			"Great question about language! Let me guide you through this.",
			"I love helping with English! Let's make learning fun.",
		},
		challenges: []models.Challenge{
			{
				Question: "Can you write a sentence using the word 'adventure'?",
				Answer:   "adventure",
				Hint:     "Think about exciting journeys or experiences",
			},
		},
	},
	models.SubjectGeneral: {
		keywords: []string{"help", "question", "learn", "understand"},
		responses: []string{
			"I'm here to help you learn! What would you like to explore today?",
			"That's a great question! Learning is an adventure.",
			"I love helping students discover new things! Let's dive in.",
			"You're doing great by asking questions! That's how we learn.",
		},
	},
}

// genericResponses cover off-topic messages with no subject keyword
var genericResponses = []string{
	"That's an interesting question! Can you tell me more about what you're trying to understand?",
	"I'd love to help you with that! What specific part would you like to focus on?",
	"Great thinking! Let me help you explore this topic further.",
	"That's a wonderful question! Learning happens when we're curious like you are.",
}

var encouragements = []string{
	"You're doing amazing! 🌟",
	"Keep up the great work! 💪",
	"I'm proud of you for asking questions! 🎉",
	"You're such a smart learner! 🧠",
	"That's fantastic thinking! ⭐",
}

// poolFor falls back to the general pool for subjects without material
func poolFor(subject models.Subject) subjectPool {
	if pool, ok := pools[subject]; ok {
		return pool
	}
	return pools[models.SubjectGeneral]
}
