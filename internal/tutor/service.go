// Package tutor simulates the AI tutor: canned educational responses,
// practice challenges and answer evaluation. No external AI service is
// called; responses are assembled from per-subject pools.
package tutor

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"tutorbuddy/internal/models"
)

// challengeOdds is the threshold a random draw must exceed before a
// response carries a challenge; encouragementOdds likewise for the
// appended encouragement line.
const (
	challengeOdds     = 0.6
	encouragementOdds = 0.7
	minChallengeDepth = 2
)

// Reply is one tutor turn. Challenge is non-nil when the reply poses a
// practice question the next student message should answer.
type Reply struct {
	Content   string
	Challenge *models.Challenge
}

// Service produces tutor replies with a human-feeling delay
type Service struct {
	mu        sync.Mutex
	rng       *rand.Rand
	baseDelay time.Duration
}

// NewService creates a tutor with the given base response delay. The
// actual delay varies between one and three times the base.
func NewService(baseDelay time.Duration) *Service {
	return &Service{
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		baseDelay: baseDelay,
	}
}

// newTestService pins the random source and removes the delay
func newTestService(seed int64) *Service {
	return &Service{rng: rand.New(rand.NewSource(seed))}
}

// Respond builds a reply to a student message. A challenge may be injected
// once the conversation is more than two messages deep; an encouragement
// line is appended at random. The delay respects context cancellation.
func (s *Service) Respond(ctx context.Context, message string, subject models.Subject, historyLen int) (Reply, error) {
	if err := s.sleep(ctx, s.responseDelay()); err != nil {
		return Reply{}, err
	}

	pool := poolFor(subject)
	lower := strings.ToLower(message)

	hasKeyword := false
	for _, keyword := range pool.keywords {
		if strings.Contains(lower, keyword) {
			hasKeyword = true
			break
		}
	}

	reply := Reply{}
	switch {
	case historyLen > minChallengeDepth && s.draw() > challengeOdds && len(pool.challenges) > 0:
		challenge := pool.challenges[s.pick(len(pool.challenges))]
		reply.Challenge = &challenge
		reply.Content = fmt.Sprintf("%s \n\nHere's a fun challenge for you: %s\n\nTake your time to think about it! 🤔",
			pool.responses[s.pick(len(pool.responses))], challenge.Question)
	case hasKeyword || subject != models.SubjectGeneral:
		reply.Content = pool.responses[s.pick(len(pool.responses))]
	default:
		reply.Content = genericResponses[s.pick(len(genericResponses))]
	}

	if s.draw() > encouragementOdds {
		reply.Content += "\n\n" + encouragements[s.pick(len(encouragements))]
	}

	reply.Content = filterContent(reply.Content)
	return reply, nil
}

// RespondToImage acknowledges an uploaded homework image. Image analysis
// is simulated; the reply just asks the student to narrow down the task.
func (s *Service) RespondToImage(ctx context.Context, subject models.Subject) (Reply, error) {
	if err := s.sleep(ctx, s.responseDelay()); err != nil {
		return Reply{}, err
	}

	content := fmt.Sprintf("I can see your homework! It looks like a %s problem. Can you tell me what specific part you need help with?", subject)
	return Reply{Content: filterContent(content)}, nil
}

func (s *Service) responseDelay() time.Duration {
	if s.baseDelay == 0 {
		return 0
	}
	return s.baseDelay + time.Duration(s.draw()*2*float64(s.baseDelay))
}

func (s *Service) draw() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *Service) pick(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *Service) sleep(ctx context.Context, d time.Duration) error {
	if d == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// blockedPhrases is the child-safety blocklist applied to every reply.
// The canned pools are already child-safe, so the list stays empty until
// responses come from an external model.
var blockedPhrases []string

// filterContent applies the child-safety filter and guarantees a
// non-degenerate reply.
func filterContent(content string) string {
	for _, phrase := range blockedPhrases {
		content = replaceFold(content, phrase, "[filtered]")
	}
	if len(content) < 10 {
		return "I'd love to help you learn! Can you ask me about your studies?"
	}
	return content
}

// replaceFold replaces every case-insensitive occurrence of old with new
func replaceFold(s, old, new string) string {
	if old == "" {
		return s
	}
	var b strings.Builder
	lower := strings.ToLower(s)
	target := strings.ToLower(old)
	for {
		i := strings.Index(lower, target)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		b.WriteString(new)
		s = s[i+len(old):]
		lower = lower[i+len(target):]
	}
}
