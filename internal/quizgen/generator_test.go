package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ayinesh/studycoach/internal/llm"
)

func validResponse() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "What does a nil map lookup return?",
		"choices": ["The zero value", "A panic", "An error", "A nil pointer"],
		"answer": "The zero value",
		"explanation": "Reading from a nil map yields the element type's zero value; only writes panic.",
		"difficulty": 2
	}`)
}

func TestGenerateFromProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validResponse()})
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), GenerateInput{TopicID: "maps", Difficulty: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "What does a nil map lookup return?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if q.Answer != "The zero value" {
		t.Errorf("unexpected answer: %q", q.Answer)
	}
	if q.TopicID != "maps" {
		t.Errorf("topic = %q, want maps", q.TopicID)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema != QuestionSchema {
		t.Error("request did not carry the question schema")
	}
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), GenerateInput{TopicID: "goroutines", Difficulty: 3})
	if err != nil {
		t.Fatalf("provider failure must not surface: %v", err)
	}
	if !strings.Contains(q.Text, "goroutines") {
		t.Errorf("fallback question does not mention the topic: %q", q.Text)
	}
	if len(q.Choices) != 4 {
		t.Errorf("fallback has %d choices, want 4", len(q.Choices))
	}
}

func TestGenerateFallsBackOnBadAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"question_text": "Pick one",
		"choices": ["a", "b", "c", "d"],
		"answer": "e",
		"explanation": "x",
		"difficulty": 1
	}`)})
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), GenerateInput{TopicID: "slices", Difficulty: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text == "Pick one" {
		t.Error("question with answer outside choices should have been rejected")
	}
}

func TestGenerateNilProviderUsesFallback(t *testing.T) {
	g := New(nil, DefaultConfig())

	q, err := g.Generate(context.Background(), GenerateInput{TopicID: "interfaces"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, c := range q.Choices {
		if c == q.Answer {
			found = true
		}
	}
	if !found {
		t.Error("fallback answer not among choices")
	}
}

func TestGenerateRequiresTopic(t *testing.T) {
	g := New(nil, DefaultConfig())
	if _, err := g.Generate(context.Background(), GenerateInput{}); err == nil {
		t.Fatal("expected error for missing topic")
	}
}

func TestFallbackRotatesWithPriorQuestions(t *testing.T) {
	g := New(nil, DefaultConfig())
	ctx := context.Background()

	first, err := g.Generate(ctx, GenerateInput{TopicID: "channels"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.Generate(ctx, GenerateInput{TopicID: "channels", PriorQuestions: []string{first.Text}})
	if err != nil {
		t.Fatal(err)
	}
	if first.Text == second.Text {
		t.Error("fallback repeated the same question back to back")
	}
}

func TestPromptIncludesGapsAndDedup(t *testing.T) {
	msg := buildUserMessage(GenerateInput{
		TopicID:        "context",
		Difficulty:     3,
		KnownGaps:      []string{"cancellation", "deadlines"},
		PriorQuestions: []string{"q1", "q2"},
	}, DefaultConfig())

	for _, want := range []string{"context", "cancellation", "q1", "q2"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestPromptDedupKeepsMostRecent(t *testing.T) {
	got := buildDedup([]string{"a", "b", "c"}, 2)
	if strings.Contains(got, "a") {
		t.Errorf("oldest entry should be dropped: %q", got)
	}
	if !strings.Contains(got, "b") || !strings.Contains(got, "c") {
		t.Errorf("recent entries missing: %q", got)
	}
}
