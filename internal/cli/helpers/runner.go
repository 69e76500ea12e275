// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"context"

	"github.com/spf13/cobra"

	"gitdash.dev/gitdash/internal/runtime"
)

// Run is a helper that provides a runtime context for the current repository
// to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx context.Context, rc *runtime.Context) error) error {
	return run(cmd, runtime.GetContext, fn)
}

// RunWithoutRepo provides a runtime context that does not open a repository
func RunWithoutRepo(cmd *cobra.Command, fn func(ctx context.Context, rc *runtime.Context) error) error {
	return run(cmd, runtime.GetContextWithoutRepo, fn)
}

// RunOptionalRepo provides a runtime context with the current repository when there is one
func RunOptionalRepo(cmd *cobra.Command, fn func(ctx context.Context, rc *runtime.Context) error) error {
	return run(cmd, runtime.GetContextOptionalRepo, fn)
}

func run(cmd *cobra.Command, open func(context.Context) (*runtime.Context, error), fn func(ctx context.Context, rc *runtime.Context) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rc, err := open(ctx)
	if err != nil {
		return err
	}
	defer rc.Close()
	return fn(ctx, rc)
}
