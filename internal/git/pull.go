package git

import (
	"context"
	"strings"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
)

// upToDateMarker is how git reports a pull with nothing to merge
const upToDateMarker = "already up to date"

// Pull pulls branch from remote into the current branch and returns git's output
func (r *Repository) Pull(ctx context.Context, remote, branch string) (string, error) {
	output, err := r.runner.RunCombined(ctx, "pull", "--no-edit", remote, branch)
	if err != nil {
		return "", gitdasherrors.NewTransportError("pull", remote, branch, ClassifyTransportOutput(output), output, err)
	}
	return output, nil
}

// IsUpToDate reports whether pull output says nothing changed
func IsUpToDate(output string) bool {
	normalized := strings.ReplaceAll(strings.ToLower(output), "-", " ")
	return strings.Contains(normalized, upToDateMarker)
}
