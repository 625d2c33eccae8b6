package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ayinesh/studycoach/internal/engine"
	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/session"
	"github.com/ayinesh/studycoach/internal/ui/theme"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start, run, and review study sessions",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a study session and print its plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, _ := cmd.Flags().GetInt("minutes")
		kindStr, _ := cmd.Flags().GetString("kind")
		topics, _ := cmd.Flags().GetStringSlice("topics")

		kind := session.PlanKind(kindStr)
		if !kind.Valid() {
			return fmt.Errorf("unknown session kind %q (regular, drill, review, recovery)", kindStr)
		}

		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			sess, err := eng.StartSession(ctx, userID, minutes, kind, topics...)
			if err != nil {
				return err
			}

			fmt.Println(theme.Title.Render(fmt.Sprintf("Session started — %d minutes, %s", sess.PlannedMinutes, kind)))

			plan, err := eng.GetSessionPlan(ctx, sess.ID)
			if err != nil {
				return err
			}
			printPlan(plan)
			return nil
		})
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the session in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			sess, err := eng.GetCurrentSession(ctx, userID)
			if err != nil {
				fmt.Println(theme.Hint.Render("No session in progress."))
				return nil
			}

			fmt.Println(theme.Title.Render("Session in progress"))
			fmt.Printf("%s %s\n", theme.Label.Render("Type:"), sess.Type)
			fmt.Printf("%s %d minutes planned\n", theme.Label.Render("Budget:"), sess.PlannedMinutes)
			fmt.Printf("%s %s\n", theme.Label.Render("Started:"), sess.StartedAt.Local().Format("15:04"))

			activities, err := eng.GetSessionActivities(ctx, sess.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s %d recorded\n", theme.Label.Render("Activities:"), len(activities))
			return nil
		})
	},
}

var sessionRecordCmd = &cobra.Command{
	Use:   "record <activity> <topic>",
	Short: "Record an activity in the current session",
	Long:  "Record an activity (content_read, quiz, dialogue, drill, reflection) against a topic. With --score the activity is completed immediately and the score feeds the learner metrics.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		activityType := learning.ActivityType(args[0])
		switch activityType {
		case learning.ActivityContentRead, learning.ActivityQuiz, learning.ActivityDialogue,
			learning.ActivityDrill, learning.ActivityReflection:
		default:
			return fmt.Errorf("unknown activity type %q", args[0])
		}
		topic := args[1]

		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			sess, err := eng.GetCurrentSession(ctx, userID)
			if err != nil {
				return fmt.Errorf("no session in progress: %w", err)
			}

			act, err := eng.RecordActivity(ctx, sess.ID, activityType, topic, "", nil)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("score") {
				score, _ := cmd.Flags().GetFloat64("score")
				if _, err := eng.CompleteActivity(ctx, act.ID, map[string]any{"score": score}); err != nil {
					return err
				}
				fmt.Printf("Recorded %s on %s (score %.2f)\n", activityType, topic, score)
				return nil
			}

			fmt.Printf("Recorded %s on %s\n", activityType, topic)
			return nil
		})
	},
}

var sessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the current session and show the summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			sess, err := eng.GetCurrentSession(ctx, userID)
			if err != nil {
				return fmt.Errorf("no session in progress: %w", err)
			}

			summary, err := eng.EndSession(ctx, sess.ID)
			if err != nil {
				return err
			}
			printSummary(summary)

			streak, err := eng.GetStreakInfo(ctx, userID)
			if err == nil {
				fmt.Printf("%s %d day(s) (longest %d)\n", theme.Label.Render("Streak:"), streak.Current, streak.Longest)
			}
			return nil
		})
	},
}

var sessionAbandonCmd = &cobra.Command{
	Use:   "abandon",
	Short: "Abandon the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, _ := cmd.Flags().GetString("reason")

		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			sess, err := eng.GetCurrentSession(ctx, userID)
			if err != nil {
				return fmt.Errorf("no session in progress: %w", err)
			}
			if err := eng.AbandonSession(ctx, sess.ID, reason); err != nil {
				return err
			}
			fmt.Println("Session abandoned.")
			return nil
		})
	},
}

var sessionHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List past sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		all, _ := cmd.Flags().GetBool("all")

		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			sessions, err := eng.GetSessionHistory(ctx, userID, limit, all)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println(theme.Hint.Render("No sessions yet."))
				return nil
			}

			fmt.Printf("%-19s  %-8s  %-11s  %7s  %7s\n", "Started", "Type", "Status", "Planned", "Actual")
			fmt.Println(strings.Repeat("─", 62))
			for _, s := range sessions {
				fmt.Printf("%-19s  %-8s  %-11s  %6dm  %6dm\n",
					s.StartedAt.Local().Format("2006-01-02 15:04"),
					s.Type, s.Status, s.PlannedMinutes, s.ActualMinutes)
			}
			return nil
		})
	},
}

func printPlan(plan *session.Plan) {
	fmt.Printf("%s %d of %d minutes planned, review ratio %.0f%%\n",
		theme.Label.Render("Plan:"), plan.PlannedMinutes(), plan.TotalMinutes, plan.ReviewRatio*100)
	for _, item := range plan.Items {
		topic := item.TopicID
		if topic == "" {
			topic = "-"
		}
		fmt.Printf("  %d. %-13s %3dm  %-20s %s\n",
			item.Order, item.Activity, item.DurationMinutes, topic, theme.Hint.Render(item.Description))
	}
}

func printSummary(s *session.Summary) {
	fmt.Println(theme.Title.Render("Session complete"))
	fmt.Printf("%s %d minutes, %d activities\n", theme.Label.Render("Done:"), s.DurationMinutes, s.ActivitiesCompleted)
	if len(s.TopicsCovered) > 0 {
		fmt.Printf("%s %s\n", theme.Label.Render("Topics:"), strings.Join(s.TopicsCovered, ", "))
	}
	if s.QuizScore != nil {
		fmt.Printf("%s %.0f%%\n", theme.Label.Render("Quiz:"), *s.QuizScore*100)
	}
	if s.DialogueScore != nil {
		fmt.Printf("%s %.0f%%\n", theme.Label.Render("Dialogue:"), *s.DialogueScore*100)
	}
	if len(s.NewGaps) > 0 {
		fmt.Printf("%s %s\n", theme.Warn.Render("New gaps:"), strings.Join(s.NewGaps, ", "))
	}
	if s.NextSessionPreview != "" {
		fmt.Println(theme.Hint.Render("Next: " + s.NextSessionPreview))
	}
}

func init() {
	sessionStartCmd.Flags().IntP("minutes", "m", 30, "Session length in minutes")
	sessionStartCmd.Flags().StringP("kind", "k", "regular", "Session kind (regular, drill, review, recovery)")
	sessionStartCmd.Flags().StringSliceP("topics", "t", nil, "Topics to focus the session on")
	sessionRecordCmd.Flags().Float64("score", 0, "Score in [0,1]; completes the activity")
	sessionAbandonCmd.Flags().String("reason", "", "Why the session was cut short")
	sessionHistoryCmd.Flags().IntP("limit", "n", 10, "Number of sessions to show")
	sessionHistoryCmd.Flags().Bool("all", false, "Include abandoned sessions")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionRecordCmd)
	sessionCmd.AddCommand(sessionEndCmd)
	sessionCmd.AddCommand(sessionAbandonCmd)
	sessionCmd.AddCommand(sessionHistoryCmd)
}
