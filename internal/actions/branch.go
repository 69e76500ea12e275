package actions

import (
	"context"

	"gitdash.dev/gitdash/internal/runtime"
	"gitdash.dev/gitdash/internal/tui/style"
	"gitdash.dev/gitdash/internal/utils"
)

// BranchListAction prints the local branches, marking the current one
func BranchListAction(ctx context.Context, rc *runtime.Context) error {
	branches, err := rc.Backend.BranchList(ctx)
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		rc.Splog.Info("No branches yet")
		return nil
	}
	for _, b := range branches {
		marker := "  "
		if b.Current {
			marker = "* "
		}
		short := b.Hash
		if len(short) > 8 {
			short = short[:8]
		}
		rc.Splog.Info("%s%s %s", marker, style.ColorBranchName(b.Name, b.Current), style.ColorDim(short))
	}
	return nil
}

// BranchCreateOptions specifies options for creating a branch
type BranchCreateOptions struct {
	Name     string
	Checkout bool
}

// BranchCreateAction creates a branch at HEAD
func BranchCreateAction(ctx context.Context, rc *runtime.Context, opts BranchCreateOptions) error {
	if err := utils.ValidateBranchName(opts.Name); err != nil {
		return err
	}
	repo, err := rc.Repository()
	if err != nil {
		return err
	}
	if err := repo.CreateBranch(ctx, opts.Name); err != nil {
		return err
	}
	rc.Splog.Info("Created branch %s", style.ColorBranchName(opts.Name, false))

	if opts.Checkout {
		return BranchCheckoutAction(ctx, rc, opts.Name)
	}
	return nil
}

// BranchDeleteAction deletes a branch other than the current one
func BranchDeleteAction(ctx context.Context, rc *runtime.Context, name string) error {
	repo, err := rc.Repository()
	if err != nil {
		return err
	}
	if err := repo.DeleteBranch(ctx, name); err != nil {
		return err
	}
	rc.Splog.Info("Deleted branch %s", name)
	return nil
}

// BranchCheckoutAction switches to a branch
func BranchCheckoutAction(ctx context.Context, rc *runtime.Context, name string) error {
	repo, err := rc.Repository()
	if err != nil {
		return err
	}
	if err := repo.CheckoutBranch(ctx, name); err != nil {
		return err
	}
	rc.Splog.Info("Checked out %s", style.ColorBranchName(name, true))
	return nil
}
