package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ayinesh/studycoach/internal/engine"
	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/ui/theme"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt",
	Short: "Inspect and apply pace/difficulty adaptations",
}

var adaptCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate adaptation triggers against current metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			triggers, err := eng.CheckTriggers(ctx, userID)
			if err != nil {
				return err
			}
			if len(triggers) == 0 {
				fmt.Println(theme.Good.Render("No adaptations suggested."))
				return nil
			}
			for i, t := range triggers {
				fmt.Printf("%d. %s (severity %.1f)\n   %s\n", i+1, theme.Warn.Render(string(t.Type)), t.Severity, t.Reason)
			}
			fmt.Println(theme.Hint.Render("Run 'studycoach adapt apply' to apply the most urgent one."))
			return nil
		})
	},
}

var adaptApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the most urgent suggested adaptation",
	RunE: func(cmd *cobra.Command, args []string) error {
		index, _ := cmd.Flags().GetInt("index")

		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			triggers, err := eng.CheckTriggers(ctx, userID)
			if err != nil {
				return err
			}
			if len(triggers) == 0 {
				fmt.Println("Nothing to apply.")
				return nil
			}
			if index < 1 || index > len(triggers) {
				return fmt.Errorf("index %d out of range (1-%d)", index, len(triggers))
			}

			result, err := eng.ApplyAdaptation(ctx, userID, triggers[index-1])
			if err != nil {
				return err
			}
			if result.Success {
				fmt.Println(theme.Good.Render("Applied: ") + result.Description)
			} else {
				fmt.Println(theme.Warn.Render("Not applied: ") + result.Description)
			}
			return nil
		})
	},
}

var adaptOverrideCmd = &cobra.Command{
	Use:   "override <pace|difficulty> <value>",
	Short: "Manually set pace or difficulty",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, _ := cmd.Flags().GetString("reason")

		var adaptationType learning.AdaptationType
		var value any
		switch args[0] {
		case "pace":
			adaptationType = learning.AdaptPace
			if !learning.Pace(args[1]).Valid() {
				return fmt.Errorf("pace must be slow, normal, or fast")
			}
			value = args[1]
		case "difficulty":
			adaptationType = learning.AdaptDifficulty
			d, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("difficulty must be a number 1-5")
			}
			value = d
		default:
			return fmt.Errorf("override target must be pace or difficulty")
		}

		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			result, err := eng.OverrideAdaptation(ctx, userID, adaptationType, value, reason)
			if err != nil {
				return err
			}
			fmt.Println(theme.Good.Render("Set: ") + result.Description)
			return nil
		})
	},
}

var adaptHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the adaptation log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			events, err := eng.GetAdaptationHistory(ctx, userID, limit)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println(theme.Hint.Render("No adaptations recorded."))
				return nil
			}

			fmt.Printf("%-19s  %-18s  %s\n", "Time", "Type", "Reason")
			fmt.Println(strings.Repeat("─", 70))
			for _, ev := range events {
				fmt.Printf("%-19s  %-18s  %s\n",
					ev.Timestamp.Local().Format("2006-01-02 15:04"), ev.Type, ev.Reason)
			}
			return nil
		})
	},
}

var adaptPredictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Show the adaptation likely to fire next",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			pred, err := eng.PredictNextAdaptation(ctx, userID)
			if err != nil {
				return err
			}
			if pred == nil {
				fmt.Println("No adaptation on the horizon.")
				return nil
			}
			fmt.Printf("%s %s\n", theme.Warn.Render("Approaching:"), pred.Type)
			fmt.Println(pred.Reason)
			return nil
		})
	},
}

var adaptPaceCmd = &cobra.Command{
	Use:   "pace",
	Short: "Show current and recommended pace",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			rec, err := eng.GetPaceRecommendation(ctx, userID)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", theme.Label.Render("Current:"), rec.Current)
			fmt.Printf("%s %s\n", theme.Label.Render("Recommended:"), rec.Recommended)
			fmt.Println(theme.Hint.Render(rec.Reason))
			return nil
		})
	},
}

func init() {
	adaptApplyCmd.Flags().IntP("index", "i", 1, "Which suggestion to apply (from 'adapt check')")
	adaptOverrideCmd.Flags().String("reason", "manual override", "Why the setting is being forced")
	adaptHistoryCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	adaptCmd.AddCommand(adaptCheckCmd)
	adaptCmd.AddCommand(adaptApplyCmd)
	adaptCmd.AddCommand(adaptOverrideCmd)
	adaptCmd.AddCommand(adaptHistoryCmd)
	adaptCmd.AddCommand(adaptPredictCmd)
	adaptCmd.AddCommand(adaptPaceCmd)
}
