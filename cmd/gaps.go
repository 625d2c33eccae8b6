package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ayinesh/studycoach/internal/engine"
	"github.com/ayinesh/studycoach/internal/ui/theme"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Track knowledge gaps",
}

var gapsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open gaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			m, err := eng.GetMetrics(ctx, userID)
			if err != nil {
				return err
			}
			if len(m.Gaps) == 0 {
				fmt.Println(theme.Good.Render("No open gaps."))
				return nil
			}
			for _, g := range m.Gaps {
				fmt.Println("  - " + g)
			}
			return nil
		})
	},
}

var gapsAddCmd = &cobra.Command{
	Use:   "add <topic>",
	Short: "Record a knowledge gap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			if err := eng.RecordGap(ctx, userID, args[0]); err != nil {
				return err
			}
			fmt.Printf("Gap recorded: %s\n", args[0])
			return nil
		})
	},
}

var gapsResolveCmd = &cobra.Command{
	Use:   "resolve <topic>",
	Short: "Mark a gap as closed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(cmd, func(ctx context.Context, eng *engine.Engine, userID uuid.UUID) error {
			if err := eng.ResolveGap(ctx, userID, args[0]); err != nil {
				return err
			}
			fmt.Println(theme.Good.Render("Gap closed: ") + args[0])
			return nil
		})
	},
}

func init() {
	gapsCmd.AddCommand(gapsListCmd)
	gapsCmd.AddCommand(gapsAddCmd)
	gapsCmd.AddCommand(gapsResolveCmd)
}
