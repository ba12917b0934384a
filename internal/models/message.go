package models

import "time"

// MessageRole distinguishes who authored a message
type MessageRole string

const (
	MessageUser MessageRole = "user"
	MessageAI   MessageRole = "ai"
)

// Subject tags a message or conversation with a school subject
type Subject string

const (
	SubjectMath      Subject = "math"
	SubjectScience   Subject = "science"
	SubjectEnglish   Subject = "english"
	SubjectHistory   Subject = "history"
	SubjectGeography Subject = "geography"
	SubjectArt       Subject = "art"
	SubjectGeneral   Subject = "general"
)

// Subjects lists every known subject tag
var Subjects = []Subject{
	SubjectMath,
	SubjectScience,
	SubjectEnglish,
	SubjectHistory,
	SubjectGeography,
	SubjectArt,
	SubjectGeneral,
}

// Valid reports whether the subject is a known tag
func (s Subject) Valid() bool {
	for _, known := range Subjects {
		if s == known {
			return true
		}
	}
	return false
}

// Message is a single chat turn. Immutable once created. Image, when set,
// holds an inline data blob (data: URL) attached by the user.
type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Image     string      `json:"image,omitempty"`
	Subject   Subject     `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
}

// Conversation is a committed session log. Immutable after commit; the only
// further operation is removal by ID.
type Conversation struct {
	ID       string    `json:"id"`
	Subject  Subject   `json:"subject"`
	Date     time.Time `json:"date"`
	Messages []Message `json:"messages"`
}
