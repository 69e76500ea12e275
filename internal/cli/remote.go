package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gitdash.dev/gitdash/internal/actions"
	"gitdash.dev/gitdash/internal/cli/helpers"
	"gitdash.dev/gitdash/internal/runtime"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push the current branch to the remote and set its upstream",
		Long: `Push the current branch to the remote and set its upstream.

For https remotes the GitHub token is placed in the remote URL for the
duration of the push and the original URL is restored afterwards.
SSH remotes use your keys and are never rewritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.PushAction(ctx, rc, actions.PushOptions{Branch: branch})
			})
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to push (default: current branch)")
	_ = cmd.RegisterFlagCompletionFunc("branch", helpers.CompleteBranches)

	return cmd
}

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	var (
		branch string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull the current branch from the remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.PullAction(ctx, rc, actions.PullOptions{Branch: branch, Force: force})
			})
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to pull (default: current branch)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Pull without confirming when the worktree has uncommitted changes")
	_ = cmd.RegisterFlagCompletionFunc("branch", helpers.CompleteBranches)

	return cmd
}
