package actions

import (
	"context"
	"os"

	"gitdash.dev/gitdash/internal/git"
	"gitdash.dev/gitdash/internal/runtime"
)

// InitOptions specifies options for the init command
type InitOptions struct {
	// Dir defaults to the working directory
	Dir string
}

// InitAction creates a repository with a README.md and an initial commit
func InitAction(ctx context.Context, rc *runtime.Context, opts InitOptions) error {
	if rc.IsDemo() {
		return runtime.ErrDemoReadOnly
	}

	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = wd
	}

	repo, err := git.InitRepository(ctx, dir)
	if err != nil {
		return err
	}
	rc.Splog.Info("Initialized repository in %s", repo.Root())
	rc.Splog.Info("Created README.md and the initial commit")
	return nil
}
