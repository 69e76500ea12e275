package git

import (
	"context"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
)

// Push pushes branch to remote with --set-upstream and returns git's porcelain report
func (r *Repository) Push(ctx context.Context, remote, branch string) (string, error) {
	output, err := r.runner.RunCombined(ctx, "push", "--set-upstream", "--porcelain", remote, branch)
	if err != nil {
		return "", gitdasherrors.NewTransportError("push", remote, branch, ClassifyTransportOutput(output), output, err)
	}
	return output, nil
}
