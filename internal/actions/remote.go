package actions

import (
	"context"
	"errors"
	"fmt"

	"gitdash.dev/gitdash/internal/remote"
	"gitdash.dev/gitdash/internal/runtime"
	"gitdash.dev/gitdash/internal/status"
	"gitdash.dev/gitdash/internal/tui"
)

// ErrNoCommits is returned when pushing a repository without history
var ErrNoCommits = errors.New("no commits to push; make a commit first")

// ErrPullAborted is returned when the user declines to pull into a dirty worktree
var ErrPullAborted = errors.New("pull aborted")

// PushOptions specifies options for the push command
type PushOptions struct {
	// Branch defaults to the current branch
	Branch string
}

// PushAction pushes a branch to the configured remote, authenticating https
// remotes with the GitHub token for the duration of the push.
func PushAction(ctx context.Context, rc *runtime.Context, opts PushOptions) error {
	valid, err := rc.Backend.IsHEADValid(ctx)
	if err != nil {
		return err
	}
	if !valid {
		return ErrNoCommits
	}

	result, err := runSession(ctx, rc, remote.Push, opts.Branch)
	if err != nil {
		return err
	}

	rc.Splog.Info("Pushed %s to %s/%s", result.Branch, result.Remote, result.Branch)
	rc.Splog.Debug("%s", result.Output)
	return nil
}

// PullOptions specifies options for the pull command
type PullOptions struct {
	Branch string
	// Force skips the confirmation for a dirty worktree
	Force bool
}

// PullAction pulls a branch from the configured remote. A dirty worktree
// needs confirmation unless Force is set.
func PullAction(ctx context.Context, rc *runtime.Context, opts PullOptions) error {
	if !opts.Force {
		dirty, err := hasTrackedChanges(ctx, rc)
		if err != nil {
			return err
		}
		if dirty {
			confirmed, err := tui.PromptConfirm("You have uncommitted changes. Pull anyway? This might cause conflicts.", false)
			if err != nil {
				if errors.Is(err, tui.ErrInteractiveDisabled) {
					return fmt.Errorf("worktree has uncommitted changes; rerun with --force to pull anyway")
				}
				return err
			}
			if !confirmed {
				return ErrPullAborted
			}
		}
	}

	result, err := runSession(ctx, rc, remote.Pull, opts.Branch)
	if err != nil {
		return err
	}

	if result.Outcome == remote.UpToDate {
		rc.Splog.Info("Already up to date!")
		return nil
	}
	rc.Splog.Info("Pulled %s from %s", result.Branch, result.Remote)
	if result.Output != "" {
		rc.Splog.Info("%s", result.Output)
	}
	return nil
}

func hasTrackedChanges(ctx context.Context, rc *runtime.Context) (bool, error) {
	entries, err := status.Reconcile(ctx, rc.Backend)
	if err != nil {
		return false, err
	}
	summary := status.Summarize(entries)
	return summary.Unstaged > 0 || summary.Staged > 0, nil
}

func runSession(ctx context.Context, rc *runtime.Context, direction remote.Direction, branch string) (remote.Result, error) {
	remoteName := rc.Config.Remote()

	endpoint, err := rc.Backend.GetRemote(ctx, remoteName)
	if err != nil {
		return remote.Result{}, err
	}

	cred, err := ResolveCredential(ctx, rc, endpoint.URL)
	if err != nil {
		return remote.Result{}, err
	}

	session := remote.NewSession(rc.Backend, rc.Splog)
	title := fmt.Sprintf("Pushing to %s...", remoteName)
	if direction == remote.Pull {
		title = fmt.Sprintf("Pulling from %s...", remoteName)
	}

	var result remote.Result
	err = tui.RunWithSpinner(rc.Splog, title, func() error {
		var runErr error
		result, runErr = session.Run(ctx, remoteName, cred, direction, branch)
		return runErr
	})
	if err != nil {
		rc.Splog.Trace("%s on %s failed: %v", direction, remoteName, err)
		return remote.Result{}, err
	}
	rc.Splog.Trace("%s of %s on %s finished (authenticated=%t)", direction, result.Branch, remoteName, result.Authenticated)
	return result, nil
}

// ResolveCredential builds the credential for an https remote from the
// configured token. The username is the login the token belongs to. Remotes
// that cannot carry a credential, or a missing token, yield a zero credential.
func ResolveCredential(ctx context.Context, rc *runtime.Context, remoteURL string) (remote.Credential, error) {
	token := rc.Config.Token()
	if token == "" || !remote.SupportsEmbeddedCredentials(remoteURL) {
		return remote.Credential{}, nil
	}

	client, err := rc.RequireGitHub()
	if err != nil {
		// no API client to look up the login; the token alone still works
		return remote.Credential{Secret: token}, nil
	}

	user, err := client.TestConnection(ctx)
	if err != nil {
		return remote.Credential{}, fmt.Errorf("failed to configure authentication: %w", err)
	}
	return remote.Credential{Username: user.Login, Secret: token}, nil
}
