// Package cli defines the gitdash command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	_ "gitdash.dev/gitdash/internal/demo" // Register demo backend factory
	"gitdash.dev/gitdash/internal/tui"
	"gitdash.dev/gitdash/internal/tui/style"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitdash",
		Short: "gitdash is a Git dashboard for your terminal",
		Long: `gitdash is a Git dashboard for your terminal.

It shows history, branches and working-tree status, and pushes and pulls
GitHub repositories with your personal access token.

Set GITDASH_DEMO=1 to explore a simulated repository.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			style.ConfigureColors(tui.IsStdoutTTY())
		},
	}

	// Add subcommands
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newGitHubCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}
