package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ayinesh/studycoach/internal/engine"
	"github.com/ayinesh/studycoach/internal/quizgen"
	"github.com/ayinesh/studycoach/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <topic>",
	Short: "Generate a quick-check quiz question",
	Long:  "Generate one multiple-choice question for a topic. Uses the configured LLM provider when available, otherwise a built-in self-check template. Record the result with 'session record quiz <topic> --score'.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reveal, _ := cmd.Flags().GetBool("reveal")
		difficulty, _ := cmd.Flags().GetInt("difficulty")

		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			input := quizgen.GenerateInput{TopicID: args[0], Difficulty: difficulty}

			m, err := eng.GetMetrics(ctx, userID)
			if err == nil {
				input.KnownGaps = m.Gaps
				if !cmd.Flags().Changed("difficulty") {
					input.Difficulty = m.DifficultyLevel
				}
			}

			q, err := eng.GenerateQuizQuestion(ctx, input)
			if err != nil {
				return err
			}

			fmt.Println(theme.Title.Render(q.Text))
			labels := []string{"A", "B", "C", "D"}
			for i, choice := range q.Choices {
				fmt.Printf("  %s) %s\n", labels[i%len(labels)], choice)
			}
			if reveal {
				fmt.Println()
				fmt.Println(theme.Good.Render("Answer: ") + q.Answer)
				if q.Explanation != "" {
					fmt.Println(theme.Hint.Render(q.Explanation))
				}
			}
			return nil
		})
	},
}

func init() {
	quizCmd.Flags().Bool("reveal", false, "Print the answer and explanation")
	quizCmd.Flags().IntP("difficulty", "d", 3, "Difficulty 1-5 (defaults to your current level)")
}
