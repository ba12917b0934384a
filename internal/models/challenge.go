package models

// Challenge is a question/answer/hint triple optionally attached to a
// tutoring reply. While one is pending, the next user message is evaluated
// against the answer instead of producing a normal reply.
type Challenge struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Hint     string `json:"hint"`
}
