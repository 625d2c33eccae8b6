// Package quizgen generates short multiple-choice quiz questions for a
// topic, using the LLM provider with a static fallback bank so a quiz can
// always be assembled offline.
package quizgen

// Question is a generated quiz question ready for display.
type Question struct {
	// Text is the question prompt displayed to the learner.
	Text string

	// Choices contains exactly 4 options, one of which matches Answer.
	Choices []string

	// Answer is the text of the correct option.
	Answer string

	// Explanation is a brief rationale shown after the learner answers.
	Explanation string

	// Difficulty is the self-assessed difficulty (1-5).
	Difficulty int

	// TopicID is the topic this question was generated for.
	TopicID string
}

// GenerateInput holds the context for generating one question.
type GenerateInput struct {
	// TopicID identifies the topic to quiz on.
	TopicID string

	// Difficulty is the target difficulty (1-5).
	Difficulty int

	// PriorQuestions contains the Text of questions already asked in this
	// session. Used for deduplication in the prompt.
	PriorQuestions []string

	// KnownGaps lists the learner's current knowledge gaps, so questions
	// can probe them.
	KnownGaps []string
}

// Config controls the generator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions to
	// include in the prompt for deduplication.
	MaxPriorQuestions int
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         512,
		Temperature:       0.7,
		MaxPriorQuestions: 8,
	}
}
