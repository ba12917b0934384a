package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"tutorbuddy/internal/models"
	"tutorbuddy/internal/store"
	"tutorbuddy/internal/tutor"
)

var ErrOutsideTutorTime = errors.New("it's not tutor time")

// Points awarded through the chat flow
const (
	pointsPerExchange  = 10
	pointsPerChallenge = 25
	pointsPerSession   = 5
)

// ChatService drives a tutoring session: the gate check, the tutor
// simulation, the pending-challenge state machine and the points awards.
type ChatService struct {
	store     *store.Store
	tutor     *tutor.Service
	evaluator *tutor.Evaluator
	emails    *EmailService

	mu      sync.Mutex
	pending *models.Challenge
}

// NewChatService creates a new chat service
func NewChatService(s *store.Store, t *tutor.Service, e *tutor.Evaluator, emails *EmailService) *ChatService {
	return &ChatService{store: s, tutor: t, evaluator: e, emails: emails}
}

// StartSession opens a tutoring session on a subject and awards the
// session points. Fails when the tutor-time window is closed.
func (s *ChatService) StartSession(subject models.Subject) error {
	if !s.store.CheckTutorTime() {
		return ErrOutsideTutorTime
	}
	if !subject.Valid() {
		subject = models.SubjectGeneral
	}

	if err := s.store.AddPoints(pointsPerSession); err != nil {
		return err
	}
	log.Printf("Session started: subject=%s", subject)
	return nil
}

// Exchange is one student turn and the tutor's reply
type Exchange struct {
	UserMessage models.Message `json:"userMessage"`
	AIMessage   models.Message `json:"aiMessage"`
}

// SendMessage records the student message and produces the tutor reply.
// When a challenge is pending the message is treated as its answer;
// otherwise the tutor may pose a new challenge. Tutor failures degrade to
// a retry prompt rather than an error.
func (s *ChatService) SendMessage(ctx context.Context, content, image string, subject models.Subject) (Exchange, error) {
	if !s.store.CheckTutorTime() {
		return Exchange{}, ErrOutsideTutorTime
	}
	if !subject.Valid() {
		subject = models.SubjectGeneral
	}

	userMsg := s.store.AppendMessage(models.Message{
		Role:    models.MessageUser,
		Content: content,
		Image:   image,
		Subject: subject,
	})

	s.store.SetAIResponding(true)
	defer s.store.SetAIResponding(false)

	replyText := s.replyTo(ctx, content, image, subject)

	aiMsg := s.store.AppendMessage(models.Message{
		Role:    models.MessageAI,
		Content: replyText,
		Subject: subject,
	})

	return Exchange{UserMessage: userMsg, AIMessage: aiMsg}, nil
}

// replyTo routes the message through the challenge state machine or the
// tutor simulation and returns the reply text
func (s *ChatService) replyTo(ctx context.Context, content, image string, subject models.Subject) string {
	s.mu.Lock()
	pending := s.pending
	s.mu.Unlock()

	if pending != nil {
		return s.answerChallenge(ctx, *pending, content, subject)
	}

	if image != "" {
		reply, err := s.tutor.RespondToImage(ctx, subject)
		if err != nil {
			log.Printf("Tutor error on image message: %v", err)
			return "I'm having trouble right now. Can you try asking me again?"
		}
		return reply.Content
	}

	historyLen := len(s.store.SessionLog())
	reply, err := s.tutor.Respond(ctx, content, subject, historyLen)
	if err != nil {
		log.Printf("Tutor error: %v", err)
		return "I'm having trouble right now. Can you try asking me again?"
	}

	if reply.Challenge != nil {
		s.mu.Lock()
		s.pending = reply.Challenge
		s.mu.Unlock()
	}

	// points flow for every completed exchange
	if err := s.store.AddPoints(pointsPerExchange); err != nil {
		log.Printf("Error awarding exchange points: %v", err)
	}

	return reply.Content
}

// answerChallenge evaluates the student answer against the pending
// challenge. A correct answer clears it and awards the bonus; a wrong
// answer keeps it pending and surfaces the hint for another try.
func (s *ChatService) answerChallenge(ctx context.Context, challenge models.Challenge, answer string, subject models.Subject) string {
	correct, err := s.evaluator.Evaluate(ctx, challenge, answer)
	if err != nil {
		log.Printf("Challenge evaluation error: %v", err)
		return "Let me help you work through this step by step..."
	}

	if !correct {
		return "Not quite right, but that's okay! Here's a hint to help you figure it out: " + challenge.Hint
	}

	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()

	if err := s.store.AddPoints(pointsPerChallenge); err != nil {
		log.Printf("Error awarding challenge points: %v", err)
	}
	achievement := s.store.AddAchievement(models.Achievement{
		Title:       "Challenge Completed!",
		Description: "Solved a " + string(subject) + " problem",
		Points:      pointsPerChallenge,
		Icon:        "🏆",
	})
	s.notifyGuardian(achievement)

	return "🎉 Excellent! You got it right! You're really understanding this concept well. Here's the explanation..."
}

// notifyGuardian emails the achievement to the guardian, best effort
func (s *ChatService) notifyGuardian(achievement models.Achievement) {
	if s.emails == nil || !s.emails.IsEnabled() {
		return
	}
	user := s.store.User()
	if user == nil || user.Email == "" {
		return
	}

	go func() {
		if err := s.emails.SendAchievementEmail(context.Background(), user.Email, user.GuardianName, user.ChildName, achievement); err != nil {
			log.Printf("Error sending achievement email: %v", err)
		}
	}()
}

// EndSession commits the session log into history and clears any pending
// challenge. Ending an empty session returns nil.
func (s *ChatService) EndSession() *models.Conversation {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
	return s.store.CommitConversation()
}

// PendingChallenge returns the challenge awaiting an answer, or nil
func (s *ChatService) PendingChallenge() *models.Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil
	}
	copied := *s.pending
	return &copied
}
