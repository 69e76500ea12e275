package actions

import (
	"context"
	"fmt"

	"gitdash.dev/gitdash/internal/runtime"
)

// StageOptions specifies options for the add command
type StageOptions struct {
	Paths []string
	All   bool
}

// StageAction stages the given paths, or everything with All
func StageAction(ctx context.Context, rc *runtime.Context, opts StageOptions) error {
	repo, err := rc.Repository()
	if err != nil {
		return err
	}

	if opts.All {
		if err := repo.StageAll(ctx); err != nil {
			return err
		}
		rc.Splog.Info("Staged all changes")
		return nil
	}

	if len(opts.Paths) == 0 {
		return fmt.Errorf("no paths given; pass paths or --all")
	}
	if err := repo.StagePaths(ctx, opts.Paths...); err != nil {
		return err
	}
	rc.Splog.Info("Staged %d path(s)", len(opts.Paths))
	return nil
}

// UnstageAction removes paths from the index, keeping worktree contents
func UnstageAction(ctx context.Context, rc *runtime.Context, paths []string) error {
	repo, err := rc.Repository()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no paths given")
	}
	if err := repo.UnstagePaths(ctx, paths...); err != nil {
		return err
	}
	rc.Splog.Info("Unstaged %d path(s)", len(paths))
	return nil
}
