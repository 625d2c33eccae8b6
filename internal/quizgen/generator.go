package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ayinesh/studycoach/internal/llm"
)

// Generator produces quiz questions via the LLM provider, falling back to
// the static bank when the provider is missing or fails.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator. provider may be nil; every Generate call then
// serves from the fallback bank.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	QuestionText string   `json:"question_text"`
	Choices      []string `json:"choices"`
	Answer       string   `json:"answer"`
	Explanation  string   `json:"explanation"`
	Difficulty   int      `json:"difficulty"`
}

// Generate produces a single question for the given input. Provider errors
// never surface: the static fallback keeps quizzes working offline.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	if input.TopicID == "" {
		return nil, fmt.Errorf("topic id is required")
	}

	if g.provider == nil {
		return fallbackQuestion(input), nil
	}

	q, err := g.generateLLM(ctx, input)
	if err != nil {
		return fallbackQuestion(input), nil
	}
	return q, nil
}

func (g *Generator) generateLLM(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &Question{
		Text:        raw.QuestionText,
		Choices:     raw.Choices,
		Answer:      raw.Answer,
		Explanation: raw.Explanation,
		Difficulty:  raw.Difficulty,
		TopicID:     input.TopicID,
	}
	if err := validateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

// validateQuestion enforces the structural invariants the schema cannot
// express: 4 choices and an answer that is one of them.
func validateQuestion(q *Question) error {
	if q.Text == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Choices) != 4 {
		return fmt.Errorf("expected 4 choices, got %d", len(q.Choices))
	}
	for _, c := range q.Choices {
		if c == q.Answer {
			return nil
		}
	}
	return fmt.Errorf("answer %q is not among the choices", q.Answer)
}
