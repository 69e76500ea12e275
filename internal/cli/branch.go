package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gitdash.dev/gitdash/internal/actions"
	"gitdash.dev/gitdash/internal/cli/helpers"
	"gitdash.dev/gitdash/internal/runtime"
)

// newBranchCmd creates the branch command and its subcommands
func newBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "branch",
		Aliases: []string{"b"},
		Short:   "List, create, delete and check out branches",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.BranchListAction)
		},
	}

	cmd.AddCommand(newBranchListCmd())
	cmd.AddCommand(newBranchCreateCmd())
	cmd.AddCommand(newBranchDeleteCmd())
	cmd.AddCommand(newBranchCheckoutCmd())

	return cmd
}

func newBranchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List local branches",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.BranchListAction)
		},
	}
}

func newBranchCreateCmd() *cobra.Command {
	var checkout bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a branch at HEAD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.BranchCreateAction(ctx, rc, actions.BranchCreateOptions{
					Name:     args[0],
					Checkout: checkout,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&checkout, "checkout", "c", false, "Check out the new branch")

	return cmd
}

func newBranchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "delete <name>",
		Aliases:           []string{"rm"},
		Short:             "Delete a branch other than the current one",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.BranchDeleteAction(ctx, rc, args[0])
			})
		},
	}
}

func newBranchCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "checkout <name>",
		Aliases:           []string{"co"},
		Short:             "Switch to a branch",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.BranchCheckoutAction(ctx, rc, args[0])
			})
		},
	}
}
