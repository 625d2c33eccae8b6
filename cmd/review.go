package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ayinesh/studycoach/internal/engine"
	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/ui/theme"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Spaced-repetition review schedule",
}

var reviewDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List topics due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			due, err := eng.GetDueReviews(ctx, userID, limit)
			if err != nil {
				return err
			}
			if len(due) == 0 {
				fmt.Println(theme.Good.Render("Nothing due. Nice."))
				return nil
			}

			fmt.Printf("%-24s  %-12s  %8s  %6s\n", "Topic", "Due", "Interval", "Ease")
			fmt.Println(strings.Repeat("─", 58))
			for _, item := range due {
				fmt.Printf("%-24s  %-12s  %7dd  %6.2f\n",
					item.TopicID,
					item.NextReviewAt.Local().Format("2006-01-02"),
					item.IntervalDays,
					item.EaseFactor)
			}
			return nil
		})
	},
}

var reviewRecordCmd = &cobra.Command{
	Use:   "record <topic>",
	Short: "Record a review outcome for a topic",
	Long:  "Record a review outcome. Quality follows the 0-5 recall scale: 0-2 means the answer was wrong, 3-5 grades how easily it came back.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quality, _ := cmd.Flags().GetInt("quality")
		if !learning.ValidQuality(quality) {
			return fmt.Errorf("quality must be in [%d,%d]", learning.MinQuality, learning.MaxQuality)
		}
		correct := quality >= 3
		if cmd.Flags().Changed("correct") {
			correct, _ = cmd.Flags().GetBool("correct")
		}

		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			item, err := eng.UpdateReviewSchedule(ctx, userID, args[0], correct, quality)
			if err != nil {
				return err
			}
			fmt.Printf("%s next review %s (interval %dd, ease %.2f)\n",
				theme.Label.Render(item.TopicID+":"),
				item.NextReviewAt.Local().Format("2006-01-02"),
				item.IntervalDays, item.EaseFactor)
			return nil
		})
	},
}

func init() {
	reviewDueCmd.Flags().IntP("limit", "n", 20, "Number of items to show")
	reviewRecordCmd.Flags().IntP("quality", "q", 4, "Recall quality 0-5")
	reviewRecordCmd.Flags().Bool("correct", true, "Whether the answer was correct (defaults from quality)")

	reviewCmd.AddCommand(reviewDueCmd)
	reviewCmd.AddCommand(reviewRecordCmd)
}
