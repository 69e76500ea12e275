package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gitdash.dev/gitdash/internal/actions"
	"gitdash.dev/gitdash/internal/cli/helpers"
	"gitdash.dev/gitdash/internal/runtime"
)

// newGitHubCmd creates the github command and its subcommands
func newGitHubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "github",
		Aliases: []string{"gh"},
		Short:   "Manage the GitHub token and repositories",
	}

	cmd.AddCommand(newGitHubSetupCmd())
	cmd.AddCommand(newGitHubTestCmd())
	cmd.AddCommand(newGitHubCreateRepoCmd())
	cmd.AddCommand(newGitHubReposCmd())
	cmd.AddCommand(newGitHubAuthCheckCmd())

	return cmd
}

func newGitHubSetupCmd() *cobra.Command {
	var (
		token     string
		fromStdin bool
		noSave    bool
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Verify a personal access token and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.RunWithoutRepo(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.GitHubSetupAction(ctx, rc, actions.GitHubSetupOptions{
					Token:          token,
					TokenFromStdin: fromStdin,
					NoSave:         noSave,
				})
			})
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Token to use instead of prompting")
	cmd.Flags().BoolVar(&fromStdin, "token-stdin", false, "Read the token from standard input")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Verify the token without saving it")

	return cmd
}

func newGitHubTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check that the configured token works",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.RunWithoutRepo(cmd, actions.GitHubTestAction)
		},
	}
}

func newGitHubCreateRepoCmd() *cobra.Command {
	var opts actions.CreateRepoOptions

	cmd := &cobra.Command{
		Use:   "create-repo [name]",
		Short: "Create a GitHub repository and add it as the remote",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Name = args[0]
			}
			return helpers.RunOptionalRepo(cmd, func(ctx context.Context, rc *runtime.Context) error {
				return actions.CreateRepoAction(ctx, rc, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Repository description")
	cmd.Flags().BoolVar(&opts.Private, "private", false, "Create a private repository")
	cmd.Flags().BoolVar(&opts.NoRemote, "no-remote", false, "Do not add the repository as a remote")
	cmd.Flags().BoolVar(&opts.Push, "push", false, "Push the current branch after adding the remote")
	cmd.Flags().BoolVar(&opts.Web, "web", false, "Open the new repository in the browser")

	return cmd
}

func newGitHubReposCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repos",
		Short: "List your GitHub repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.RunWithoutRepo(cmd, actions.ListReposAction)
		},
	}
}

func newGitHubAuthCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth-check",
		Short: "Check that push and pull will authenticate with the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.AuthCheckAction)
		},
	}
}
