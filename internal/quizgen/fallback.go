package quizgen

import "fmt"

// fallbackBank holds topic-agnostic self-check templates. They trade
// specificity for availability: a quiz block still works with no API key
// and no network.
var fallbackBank = []struct {
	text        string
	choices     [4]string
	answer      int
	explanation string
}{
	{
		text: "Without looking at your notes, how confidently could you explain the core idea of %s to someone else?",
		choices: [4]string{
			"I could teach it",
			"I could summarize it with some hesitation",
			"I remember fragments only",
			"I would need to relearn it",
		},
		answer:      0,
		explanation: "Being able to teach a topic is the strongest signal of understanding; anything less marks it for review.",
	},
	{
		text: "Which study action gives the best retention payoff for %s right now?",
		choices: [4]string{
			"Testing yourself from memory",
			"Rereading the material",
			"Highlighting key passages",
			"Watching another overview",
		},
		answer:      0,
		explanation: "Retrieval practice beats passive review; recalling from memory strengthens what rereading only refreshes.",
	},
	{
		text: "You just got a practice question about %s wrong. What is the most effective next step?",
		choices: [4]string{
			"Work through why the right answer is right",
			"Move on and come back tomorrow",
			"Reread the whole chapter",
			"Try an easier topic first",
		},
		answer:      0,
		explanation: "Analyzing the error while it is fresh turns a miss into a durable correction.",
	},
}

// fallbackQuestion serves a deterministic question from the static bank,
// rotating by how many questions this session has already asked.
func fallbackQuestion(input GenerateInput) *Question {
	entry := fallbackBank[len(input.PriorQuestions)%len(fallbackBank)]

	difficulty := input.Difficulty
	if difficulty < 1 || difficulty > 5 {
		difficulty = 2
	}

	return &Question{
		Text:        fmt.Sprintf(entry.text, input.TopicID),
		Choices:     entry.choices[:],
		Answer:      entry.choices[entry.answer],
		Explanation: entry.explanation,
		Difficulty:  difficulty,
		TopicID:     input.TopicID,
	}
}
