package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ayinesh/studycoach/internal/engine"
	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning metrics and trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			report, err := eng.AnalyzePatterns(ctx, userID)
			if err != nil {
				return err
			}

			fmt.Println(theme.Title.Render("Learning stats"))
			fmt.Printf("%s %.0f%% %s\n", theme.Label.Render("Quiz avg:"),
				report.AvgQuizScore*100, renderTrend(report.QuizTrend))
			fmt.Printf("%s %.0f%% %s\n", theme.Label.Render("Dialogue avg:"),
				report.AvgDialogueScore*100, renderTrend(report.DialogueTrend))
			fmt.Printf("%s %s, difficulty %d/5\n", theme.Label.Render("Pace:"),
				report.Pace, report.DifficultyLevel)
			fmt.Printf("%s %d this week, %d this month, avg %dm\n", theme.Label.Render("Sessions:"),
				report.SessionsLast7Days, report.SessionsLast30Days, report.AvgSessionMinutes)
			fmt.Printf("%s %.0f%%\n", theme.Label.Render("Completion:"), report.CompletionRate*100)
			if report.GapsCount > 0 {
				fmt.Printf("%s %d open\n", theme.Warn.Render("Gaps:"), report.GapsCount)
			}
			if report.MissedDays > 0 {
				fmt.Printf("%s %d day(s)\n", theme.Warn.Render("Missed:"), report.MissedDays)
			}

			streak, err := eng.GetStreakInfo(ctx, userID)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("%s %d day(s), longest %d", theme.Label.Render("Streak:"), streak.Current, streak.Longest)
			if streak.AtRisk {
				line += " " + theme.Warn.Render("(at risk — study today!)")
			}
			fmt.Println(line)
			return nil
		})
	},
}

func renderTrend(t learning.Trend) string {
	switch t {
	case learning.TrendImproving:
		return theme.Good.Render("↑ improving")
	case learning.TrendDeclining:
		return theme.Bad.Render("↓ declining")
	default:
		return theme.Hint.Render("→ stable")
	}
}
