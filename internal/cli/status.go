package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gitdash.dev/gitdash/internal/actions"
	"gitdash.dev/gitdash/internal/cli/helpers"
	"gitdash.dev/gitdash/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show staged, unstaged and untracked paths",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.StatusAction(ctx, rc, actions.StatusOptions{Short: short})
			})
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print one line per path with a two column code")

	return cmd
}

// newStatsCmd creates the stats command
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show commit, branch and change counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.StatsAction)
		},
	}
}

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"l"},
		Short:   "Show the commit history of the current branch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.LogAction(ctx, rc, actions.LogOptions{Limit: limit})
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "max-count", "n", 0, "Limit the number of commits (default from config, 100)")

	return cmd
}
