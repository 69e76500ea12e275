package git

import (
	"context"
	"fmt"
	"strings"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
)

// StagePaths stages the given paths
func (r *Repository) StagePaths(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	if _, err := r.runner.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to stage %s: %w", strings.Join(paths, ", "), err)
	}
	return nil
}

// StageAll stages all changes including untracked files
func (r *Repository) StageAll(ctx context.Context) error {
	if _, err := r.runner.Run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// UnstagePaths removes the given paths from the index, keeping worktree contents
func (r *Repository) UnstagePaths(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	valid, err := r.IsHEADValid(ctx)
	if err != nil {
		return err
	}

	var args []string
	if valid {
		args = append([]string{"reset", "-q", "HEAD", "--"}, paths...)
	} else {
		// nothing to reset to on an unborn branch
		args = append([]string{"rm", "--cached", "-q", "-r", "--"}, paths...)
	}
	if _, err := r.runner.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to unstage %s: %w", strings.Join(paths, ", "), err)
	}
	return nil
}

// HasStagedChanges checks if the index differs from HEAD. On an unborn
// branch any index entry counts.
func (r *Repository) HasStagedChanges(ctx context.Context) (bool, error) {
	valid, err := r.IsHEADValid(ctx)
	if err != nil {
		return false, err
	}
	if !valid {
		output, err := r.runner.Run(ctx, "ls-files", "--cached")
		if err != nil {
			return false, fmt.Errorf("failed to list index entries: %w", err)
		}
		return output != "", nil
	}

	output, err := r.runner.Run(ctx, "diff", "--cached", "--name-only", "HEAD")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return output != "", nil
}

// IsDirty reports whether tracked files differ from HEAD in the index or worktree.
// Untracked files do not count.
func (r *Repository) IsDirty(ctx context.Context) (bool, error) {
	output, err := r.runner.Run(ctx, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, fmt.Errorf("failed to check worktree state: %w", err)
	}
	return output != "", nil
}

// Commit records the index as a new commit
func (r *Repository) Commit(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("commit message must not be empty")
	}

	staged, err := r.HasStagedChanges(ctx)
	if err != nil {
		return "", err
	}
	if !staged {
		return "", gitdasherrors.ErrNothingToCommit
	}

	if _, err := r.runner.Run(ctx, "commit", "-q", "-m", message); err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	sha, err := r.runner.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve new commit: %w", err)
	}
	return sha, nil
}
