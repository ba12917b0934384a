package tutor

import (
	"context"
	"strings"
	"time"

	"tutorbuddy/internal/models"
)

// evaluationDelay simulates the tutor reading the answer
const evaluationDelay = 500 * time.Millisecond

// Matcher is one strategy for deciding whether a student answer satisfies
// the expected answer. Matchers run in order; the first match wins.
type Matcher interface {
	Match(answer, expected string) bool
}

// ExactMatcher accepts an answer equal to the expected text
type ExactMatcher struct{}

func (ExactMatcher) Match(answer, expected string) bool {
	return answer == expected
}

// SubstringMatcher accepts an answer containing the expected text, so
// "I think it's 8!" passes for an expected "8".
type SubstringMatcher struct{}

func (SubstringMatcher) Match(answer, expected string) bool {
	return strings.Contains(answer, expected)
}

// AlternateMatcher accepts known alternative phrasings of an expected
// answer, such as the spelled-out form of a number.
type AlternateMatcher struct {
	Alternates map[string][]string
}

func (m AlternateMatcher) Match(answer, expected string) bool {
	for _, alternate := range m.Alternates[expected] {
		if strings.Contains(answer, strings.ToLower(alternate)) {
			return true
		}
	}
	return false
}

// defaultAlternates covers the built-in challenge pool
var defaultAlternates = map[string][]string{
	"8":                          {"eight", "ate"},
	"24":                         {"twenty-four", "twenty four"},
	"water, sunlight, nutrients": {"water", "sunlight", "nutrients", "sun", "light"},
}

// Evaluator scores challenge answers through a matcher chain
type Evaluator struct {
	matchers []Matcher
	delay    time.Duration
}

// NewEvaluator builds the default matcher chain
func NewEvaluator() *Evaluator {
	return &Evaluator{
		matchers: []Matcher{
			ExactMatcher{},
			SubstringMatcher{},
			AlternateMatcher{Alternates: defaultAlternates},
		},
		delay: evaluationDelay,
	}
}

// Evaluate reports whether the answer satisfies the challenge. Matching is
// case-insensitive and tolerant of surrounding text.
func (e *Evaluator) Evaluate(ctx context.Context, challenge models.Challenge, answer string) (bool, error) {
	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
		}
	}

	normalized := strings.ToLower(strings.TrimSpace(answer))
	expected := strings.ToLower(challenge.Answer)

	for _, matcher := range e.matchers {
		if matcher.Match(normalized, expected) {
			return true, nil
		}
	}
	return false, nil
}
