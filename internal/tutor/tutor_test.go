package tutor

import (
	"context"
	"strings"
	"testing"

	"tutorbuddy/internal/models"
)

func TestEvaluateAnswer(t *testing.T) {
	evaluator := NewEvaluator()
	evaluator.delay = 0

	tests := []struct {
		name      string
		challenge models.Challenge
		answer    string
		want      bool
	}{
		{"exact digits", models.Challenge{Answer: "8"}, "8", true},
		{"digits in sentence", models.Challenge{Answer: "8"}, "I think it's 8!", true},
		{"spelled out", models.Challenge{Answer: "8"}, "Eight", true},
		{"wrong number", models.Challenge{Answer: "8"}, "7", false},
		{"hyphenated alternate", models.Challenge{Answer: "24"}, "twenty-four", true},
		{"spaced alternate", models.Challenge{Answer: "24"}, "it is twenty four", true},
		{"partial science answer", models.Challenge{Answer: "water, sunlight, nutrients"}, "they need sunlight", true},
		{"whitespace trimmed", models.Challenge{Answer: "adventure"}, "  my ADVENTURE story  ", true},
		{"empty answer", models.Challenge{Answer: "8"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluator.Evaluate(context.Background(), tt.challenge, tt.answer)
			if err != nil {
				t.Fatalf("Evaluate returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q vs %q) = %v, want %v", tt.answer, tt.challenge.Answer, got, tt.want)
			}
		})
	}
}

func TestEvaluateRespectsCancellation(t *testing.T) {
	evaluator := NewEvaluator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := evaluator.Evaluate(ctx, models.Challenge{Answer: "8"}, "8"); err == nil {
		t.Error("cancelled evaluation did not return an error")
	}
}

func TestRespondNoChallengeInShortConversation(t *testing.T) {
	service := newTestService(1)

	// a challenge needs more than two prior messages regardless of the draw
	for i := 0; i < 50; i++ {
		reply, err := service.Respond(context.Background(), "solve this equation", models.SubjectMath, 2)
		if err != nil {
			t.Fatalf("Respond returned error: %v", err)
		}
		if reply.Challenge != nil {
			t.Fatal("challenge injected before the conversation was deep enough")
		}
	}
}

func TestRespondEventuallyInjectsChallenge(t *testing.T) {
	service := newTestService(1)

	injected := false
	for i := 0; i < 200 && !injected; i++ {
		reply, err := service.Respond(context.Background(), "help me solve this", models.SubjectMath, 5)
		if err != nil {
			t.Fatalf("Respond returned error: %v", err)
		}
		if reply.Challenge != nil {
			injected = true
			if reply.Challenge.Answer == "" || reply.Challenge.Question == "" {
				t.Error("injected challenge is missing question or answer")
			}
			if !strings.Contains(reply.Content, reply.Challenge.Question) {
				t.Error("reply content does not pose the challenge question")
			}
		}
	}
	if !injected {
		t.Error("no challenge injected across 200 deep-conversation replies")
	}
}

func TestRespondUsesSubjectPool(t *testing.T) {
	service := newTestService(7)

	reply, err := service.Respond(context.Background(), "tell me about plants", models.SubjectScience, 0)
	if err != nil {
		t.Fatalf("Respond returned error: %v", err)
	}
	if reply.Content == "" {
		t.Fatal("empty reply")
	}
	if reply.Challenge != nil {
		t.Error("challenge injected with empty history")
	}
}

func TestRespondUnknownSubjectFallsBackToGeneral(t *testing.T) {
	service := newTestService(3)

	reply, err := service.Respond(context.Background(), "hello", models.SubjectGeography, 0)
	if err != nil {
		t.Fatalf("Respond returned error: %v", err)
	}
	if reply.Content == "" {
		t.Fatal("empty reply for subject without a pool")
	}
}

func TestRespondToImage(t *testing.T) {
	service := newTestService(5)

	reply, err := service.RespondToImage(context.Background(), models.SubjectEnglish)
	if err != nil {
		t.Fatalf("RespondToImage returned error: %v", err)
	}
	if !strings.Contains(reply.Content, "english") {
		t.Errorf("image reply does not mention the subject: %q", reply.Content)
	}
}

func TestFilterContentShortFallback(t *testing.T) {
	if got := filterContent("hi"); !strings.Contains(got, "help you learn") {
		t.Errorf("degenerate content not replaced, got %q", got)
	}
}

func TestReplaceFold(t *testing.T) {
	if got := replaceFold("Bad word, bAd word", "bad", "[filtered]"); got != "[filtered] word, [filtered] word" {
		t.Errorf("replaceFold = %q", got)
	}
}
