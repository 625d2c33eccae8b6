package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ayinesh/studycoach/internal/engine"
	"github.com/ayinesh/studycoach/internal/ui/theme"
)

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Plan a comeback after missed days",
	Long:  "Build a recovery plan from your absence length: which topics to review first, whether to hold back new content, and how many sessions to spread it over. Days missed are derived from your history unless --days is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			plan, err := eng.GenerateRecoveryPlan(ctx, userID, days)
			if err != nil {
				return err
			}

			fmt.Println(theme.Title.Render("Recovery plan"))
			fmt.Println(theme.Body.Render(plan.Message))
			fmt.Println()
			fmt.Printf("%s %d\n", theme.Label.Render("Days missed:"), plan.DaysMissed)
			fmt.Printf("%s %d\n", theme.Label.Render("Sessions:"), plan.SuggestedSessionCount)
			if plan.ReducedNewContent {
				fmt.Println(theme.Warn.Render("New content is reduced until review catches up."))
			}
			if len(plan.ReviewTopics) > 0 {
				fmt.Printf("%s %s\n", theme.Label.Render("Review first:"), strings.Join(plan.ReviewTopics, ", "))
			}
			if len(plan.PriorityGaps) > 0 {
				fmt.Printf("%s %s\n", theme.Label.Render("Priority gaps:"), strings.Join(plan.PriorityGaps, ", "))
			}
			fmt.Println()
			fmt.Println(theme.Hint.Render("Start with: studycoach session start --kind recovery"))
			return nil
		})
	},
}

func init() {
	recoverCmd.Flags().Int("days", 0, "Override the number of days missed")
}
