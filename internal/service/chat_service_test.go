package service

import (
	"context"
	"strings"
	"testing"

	"tutorbuddy/internal/models"
	"tutorbuddy/internal/store"
	"tutorbuddy/internal/tutor"
)

// openGate widens the tutor-time window so the gate never blocks
func openGate(t *testing.T, s *store.Store) {
	t.Helper()
	start, end := "00:00", "23:59"
	s.UpdateSettings(models.SettingsUpdate{TutorTimeStart: &start, TutorTimeEnd: &end})
}

// closeGate sets an inverted window, which is never active
func closeGate(t *testing.T, s *store.Store) {
	t.Helper()
	start, end := "23:00", "01:00"
	s.UpdateSettings(models.SettingsUpdate{TutorTimeStart: &start, TutorTimeEnd: &end})
}

func newChatFixture(t *testing.T) (*ChatService, *store.Store) {
	t.Helper()
	st := store.New(nil, false)
	st.Login(models.UserIdentity{ID: "u1", ChildName: "Maya", Role: models.RoleChild})
	openGate(t, st)

	chat := NewChatService(st, tutor.NewService(0), tutor.NewEvaluator(), nil)
	return chat, st
}

func TestStartSessionAwardsPoints(t *testing.T) {
	chat, st := newChatFixture(t)

	if err := chat.StartSession(models.SubjectMath); err != nil {
		t.Fatalf("StartSession returned error: %v", err)
	}
	if got := st.Avatar(); got.Points != 5 {
		t.Errorf("points after session start = %d, want 5", got.Points)
	}
}

func TestStartSessionBlockedOutsideTutorTime(t *testing.T) {
	chat, st := newChatFixture(t)
	closeGate(t, st)

	if err := chat.StartSession(models.SubjectMath); err != ErrOutsideTutorTime {
		t.Fatalf("StartSession = %v, want ErrOutsideTutorTime", err)
	}
	if got := st.Avatar(); got.Points != 0 {
		t.Errorf("blocked session still awarded %d points", got.Points)
	}
}

func TestSendMessageRecordsExchange(t *testing.T) {
	chat, st := newChatFixture(t)

	exchange, err := chat.SendMessage(context.Background(), "Can you help me add fractions?", "", models.SubjectMath)
	if err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}

	if exchange.UserMessage.Role != models.MessageUser || exchange.UserMessage.Content != "Can you help me add fractions?" {
		t.Errorf("user message not recorded: %+v", exchange.UserMessage)
	}
	if exchange.AIMessage.Role != models.MessageAI || exchange.AIMessage.Content == "" {
		t.Errorf("tutor reply not recorded: %+v", exchange.AIMessage)
	}

	log := st.SessionLog()
	if len(log) != 2 {
		t.Fatalf("session log has %d messages, want 2", len(log))
	}
	if got := st.Avatar(); got.Points != 10 {
		t.Errorf("points after exchange = %d, want 10", got.Points)
	}
	if st.ActivityFlags().AIResponding {
		t.Error("AI-responding flag still set after reply")
	}
}

func TestSendMessageBlockedOutsideTutorTime(t *testing.T) {
	chat, st := newChatFixture(t)
	closeGate(t, st)

	if _, err := chat.SendMessage(context.Background(), "hello", "", models.SubjectMath); err != ErrOutsideTutorTime {
		t.Fatalf("SendMessage = %v, want ErrOutsideTutorTime", err)
	}
	if len(st.SessionLog()) != 0 {
		t.Error("blocked message still entered the session log")
	}
}

func TestChallengeCorrectAnswer(t *testing.T) {
	chat, st := newChatFixture(t)

	chat.pending = &models.Challenge{
		Question: "What is 6 × 4?",
		Answer:   "24",
		Hint:     "Try adding 6 four times",
	}

	exchange, err := chat.SendMessage(context.Background(), "it's 24", "", models.SubjectMath)
	if err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}

	if !strings.Contains(exchange.AIMessage.Content, "Excellent") {
		t.Errorf("correct answer reply = %q", exchange.AIMessage.Content)
	}
	if chat.PendingChallenge() != nil {
		t.Error("challenge not cleared after correct answer")
	}

	avatar := st.Avatar()
	if avatar.Points != 25 {
		t.Errorf("points after challenge = %d, want 25", avatar.Points)
	}
	if len(avatar.Achievements) != 1 || avatar.Achievements[0].Title != "Challenge Completed!" {
		t.Errorf("achievement not recorded: %+v", avatar.Achievements)
	}
}

func TestChallengeWrongAnswerKeepsPending(t *testing.T) {
	chat, st := newChatFixture(t)

	chat.pending = &models.Challenge{
		Question: "What is 6 × 4?",
		Answer:   "24",
		Hint:     "Try adding 6 four times",
	}

	exchange, err := chat.SendMessage(context.Background(), "22", "", models.SubjectMath)
	if err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}

	if !strings.Contains(exchange.AIMessage.Content, "Try adding 6 four times") {
		t.Errorf("wrong-answer reply does not carry the hint: %q", exchange.AIMessage.Content)
	}
	if chat.PendingChallenge() == nil {
		t.Error("challenge cleared after wrong answer")
	}
	if got := st.Avatar(); got.Points != 0 {
		t.Errorf("wrong answer awarded %d points", got.Points)
	}
}

func TestImageMessageAcknowledged(t *testing.T) {
	chat, _ := newChatFixture(t)

	exchange, err := chat.SendMessage(context.Background(), "I uploaded an image for help", "data:image/png;base64,aGk=", models.SubjectScience)
	if err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}
	if !strings.Contains(exchange.AIMessage.Content, "homework") {
		t.Errorf("image reply = %q, want homework acknowledgement", exchange.AIMessage.Content)
	}
}

func TestEndSessionCommitsAndClearsChallenge(t *testing.T) {
	chat, st := newChatFixture(t)

	if _, err := chat.SendMessage(context.Background(), "help me with spelling", "", models.SubjectEnglish); err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}
	chat.pending = &models.Challenge{Answer: "24"}

	conversation := chat.EndSession()
	if conversation == nil {
		t.Fatal("EndSession of a non-empty log returned nil")
	}
	if conversation.Subject != models.SubjectEnglish {
		t.Errorf("committed subject = %q, want english", conversation.Subject)
	}
	if chat.PendingChallenge() != nil {
		t.Error("pending challenge survived session end")
	}
	if len(st.SessionLog()) != 0 {
		t.Error("session log not cleared")
	}

	if chat.EndSession() != nil {
		t.Error("ending an empty session returned a conversation")
	}
}

func TestSessionPointsAccumulate(t *testing.T) {
	chat, st := newChatFixture(t)

	if err := chat.StartSession(models.SubjectMath); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := chat.SendMessage(context.Background(), "what is addition", "", models.SubjectMath); err != nil {
			t.Fatal(err)
		}
		// replies that pose a challenge divert the next message, so clear it
		chat.mu.Lock()
		chat.pending = nil
		chat.mu.Unlock()
	}

	if got := st.Avatar(); got.Points != 5+3*10 {
		t.Errorf("points = %d, want 35", got.Points)
	}
}
