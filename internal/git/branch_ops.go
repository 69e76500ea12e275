package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
)

// BranchExists reports whether refs/heads/<name> exists. The branch of an
// unborn HEAD does not.
func (r *Repository) BranchExists(_ context.Context, name string) (bool, error) {
	_, err := r.Reference(plumbing.NewBranchReferenceName(name), true)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to resolve branch %s: %w", name, err)
}

// CreateBranch creates a branch at HEAD without checking it out
func (r *Repository) CreateBranch(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("branch name must not be empty")
	}
	if _, err := r.runner.Run(ctx, "branch", name); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// DeleteBranch force-deletes a branch. The checked out branch cannot be deleted.
func (r *Repository) DeleteBranch(ctx context.Context, name string) error {
	current, err := r.CurrentBranch(ctx)
	if err == nil && current == name {
		return fmt.Errorf("%w: cannot delete '%s'", gitdasherrors.ErrCurrentBranch, name)
	}
	if _, err := r.runner.Run(ctx, "branch", "-D", name); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}

// CheckoutBranch switches the worktree to the given branch
func (r *Repository) CheckoutBranch(ctx context.Context, name string) error {
	if _, err := r.runner.Run(ctx, "checkout", "-q", name); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", name, err)
	}
	return nil
}
