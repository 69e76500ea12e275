package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gitdash.dev/gitdash/internal/actions"
	"gitdash.dev/gitdash/internal/cli/helpers"
	"gitdash.dev/gitdash/internal/runtime"
)

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "add [paths...]",
		Short: "Stage paths, or everything with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.StageAction(ctx, rc, actions.StageOptions{Paths: args, All: all})
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "A", false, "Stage all changes, including untracked files")

	return cmd
}

// newResetCmd creates the reset command
func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <paths...>",
		Short: "Unstage paths, keeping their worktree contents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.UnstageAction(ctx, rc, args)
			})
		},
	}
}

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record the staged changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.CommitAction(ctx, rc, actions.CommitOptions{Message: message})
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")

	return cmd
}

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a repository with a README.md and an initial commit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.RunWithoutRepo(cmd, func(ctx context.Context, rc *runtime.Context) error {
				opts := actions.InitOptions{}
				if len(args) > 0 {
					opts.Dir = args[0]
				}
				return actions.InitAction(ctx, rc, opts)
			})
		},
	}
}
