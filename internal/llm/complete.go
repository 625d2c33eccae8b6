package llm

import (
	"context"
	"fmt"
	"strings"
)

// Complete is a convenience wrapper for single-turn plain-text generation:
// one system prompt, one user prompt, no schema. Returns the trimmed
// response text.
func Complete(ctx context.Context, p Provider, system, prompt string, temperature float64, maxTokens int) (string, error) {
	resp, err := p.Generate(ctx, Request{
		System:      system,
		Messages:    []Message{{Role: RoleUser, Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Content) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return strings.TrimSpace(strings.Trim(string(resp.Content), `"`)), nil
}
