package cli

import (
	"context"
	"errors"
	"strings"

	"gitdash.dev/gitdash/internal/actions"
	gitdasherrors "gitdash.dev/gitdash/internal/errors"
	"gitdash.dev/gitdash/internal/runtime"
)

// FormatError turns an error returned by a command into the message shown
// to the user. Known kinds get an explanation; the original error text is
// kept as the last line.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var lines []string
	if hint := explain(err); hint != "" {
		lines = append(lines, hint)
	}
	lines = append(lines, "Error: "+err.Error())

	var restoreErr *gitdasherrors.RestoreError
	if errors.As(err, &restoreErr) {
		lines = append(lines,
			"Warning: the URL of remote '"+restoreErr.Remote+"' could not be restored and may contain your token.",
			"Fix it with: git remote set-url "+restoreErr.Remote+" <url>")
	}
	return strings.Join(lines, "\n")
}

func explain(err error) string {
	var notConfigured *gitdasherrors.RemoteNotConfiguredError

	switch {
	case errors.Is(err, context.Canceled):
		return "Canceled."
	case errors.Is(err, gitdasherrors.ErrAuthenticationFailed):
		return "Authentication failed! This usually means:\n" +
			"  1. Your GitHub token is invalid or expired\n" +
			"  2. The token doesn't have 'repo' permissions\n" +
			"  3. The repository doesn't exist on GitHub\n" +
			"Check your token with 'gitdash github setup'."
	case errors.Is(err, gitdasherrors.ErrPermissionDenied):
		return "Permission denied. Check that your token has 'repo' scope."
	case errors.Is(err, gitdasherrors.ErrDivergedHistory):
		return "The remote repository has changes you don't have locally. Try pulling first."
	case errors.Is(err, gitdasherrors.ErrMergeConflict):
		return "Merge conflict detected! You need to resolve conflicts manually."
	case errors.Is(err, gitdasherrors.ErrNetworkUnreachable):
		return "Could not reach the remote. Check your internet connection and that the repository exists."
	case errors.As(err, &notConfigured):
		return "No remote '" + notConfigured.Remote + "' configured. Create a GitHub repo first with 'gitdash github create-repo'."
	case errors.Is(err, gitdasherrors.ErrNoActiveBranch):
		return "No active branch found."
	case errors.Is(err, actions.ErrNoCommits):
		return "No commits to push. Make some commits first!"
	case errors.Is(err, gitdasherrors.ErrNothingToCommit):
		return "No changes to commit. Stage some changes first with 'gitdash add'."
	case errors.Is(err, gitdasherrors.ErrNotAuthenticated):
		return "No GitHub token configured. Run 'gitdash github setup' or set GITHUB_TOKEN."
	case errors.Is(err, gitdasherrors.ErrRepositoryExists):
		return "Repository name already exists on your GitHub account."
	case errors.Is(err, actions.ErrRemoteExists):
		return "This repository already has a remote configured."
	case errors.Is(err, gitdasherrors.ErrCurrentBranch):
		return "Cannot delete the current branch. Check out another branch first."
	case errors.Is(err, gitdasherrors.ErrRepositoryUnavailable):
		return "Not a git repository. Run 'gitdash init' to create one."
	case errors.Is(err, runtime.ErrDemoReadOnly):
		return "Unset GITDASH_DEMO to run this command on a real repository."
	case errors.Is(err, gitdasherrors.ErrTransport):
		return "The remote operation failed."
	}
	return ""
}
