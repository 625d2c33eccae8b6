package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a study coach writing quick-check quiz questions for an adult self-learner.

Rules:
- Generate a single multiple-choice question for the given topic and difficulty.
- The question text should be clear, self-contained, and answerable without external material.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect plausible misconceptions, not random values.
- The answer field must match one of the choices exactly.
- The explanation should say why the correct option is right in one or two sentences.
- When the learner has known gaps, prefer questions that probe them.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.TopicID)
	fmt.Fprintf(&b, "Target difficulty: %d of 5\n", input.Difficulty)

	b.WriteString("\nKnown gaps:\n")
	if len(input.KnownGaps) == 0 {
		b.WriteString("None")
	} else {
		b.WriteString(strings.Join(input.KnownGaps, ", "))
	}

	b.WriteString("\n\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, keeping the most
// recent max entries.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
