// Package remote runs a single push or pull against a named remote with a
// credential temporarily embedded in the remote URL. The original URL is
// written back on every exit path.
package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
	"gitdash.dev/gitdash/internal/git"
)

// RestoreTimeout bounds the write that puts the original URL back
const RestoreTimeout = 30 * time.Second

// Direction selects the transport operation
type Direction int

const (
	// Push sends the branch to the remote
	Push Direction = iota
	// Pull fetches and merges the branch from the remote
	Pull
)

func (d Direction) String() string {
	if d == Pull {
		return "pull"
	}
	return "push"
}

// Outcome distinguishes successful results
type Outcome int

const (
	// Succeeded means the transport ran and changed something
	Succeeded Outcome = iota
	// UpToDate means a pull found nothing to merge
	UpToDate
)

// Result describes a completed session
type Result struct {
	Direction     Direction
	Remote        string
	Branch        string
	Outcome       Outcome
	Output        string
	Authenticated bool
}

// Logger receives debug traces of a session
type Logger interface {
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Session performs scoped remote operations against one backend
type Session struct {
	backend git.Backend
	logger  Logger
	locks   *keyedMutex
}

// NewSession creates a session runner for backend. A nil logger discards traces.
func NewSession(backend git.Backend, logger Logger) *Session {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Session{
		backend: backend,
		logger:  logger,
		locks:   sharedLocks,
	}
}

// Run performs exactly one push or pull of branch against the named remote.
// An empty branch means the current branch. When the remote URL is
// https and cred is set, the credential is embedded in the URL for the
// duration of the call and the original URL is restored before Run returns,
// whether the transport succeeded, failed or was cancelled. Only the first
// url of the remote is rewritten. Key-based URLs are used as-is. The branch
// must exist locally before anything is touched.
func (s *Session) Run(ctx context.Context, remoteName string, cred Credential, direction Direction, branch string) (result Result, err error) {
	unlock, err := s.locks.Lock(ctx, s.backend.Root()+"\x00"+remoteName)
	if err != nil {
		return Result{}, err
	}
	defer unlock()

	endpoint, err := s.backend.GetRemote(ctx, remoteName)
	if err != nil {
		return Result{}, err
	}

	if branch == "" {
		branch, err = s.backend.CurrentBranch(ctx)
		if err != nil {
			return Result{}, err
		}
	}
	if branch == "" {
		return Result{}, fmt.Errorf("%w: nothing to %s", gitdasherrors.ErrNoActiveBranch, direction)
	}
	exists, err := s.backend.BranchExists(ctx, branch)
	if err != nil {
		return Result{}, err
	}
	if !exists {
		return Result{}, fmt.Errorf("%w: branch %s has no commits", gitdasherrors.ErrNoActiveBranch, branch)
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	result = Result{
		Direction: direction,
		Remote:    remoteName,
		Branch:    branch,
	}

	originalURL := endpoint.URL
	if !cred.IsZero() && SupportsEmbeddedCredentials(originalURL) {
		authURL, injectErr := InjectCredential(originalURL, cred)
		if injectErr != nil {
			return Result{}, fmt.Errorf("failed to build authenticated url for remote %s: %w", remoteName, injectErr)
		}

		if setErr := s.backend.SetRemoteURL(ctx, remoteName, authURL); setErr != nil {
			// the write may have partially landed
			restoreErr := s.restore(ctx, remoteName, originalURL)
			return Result{}, errors.Join(
				fmt.Errorf("failed to set authenticated url on remote %s: %w", remoteName, redactError(setErr, cred)),
				restoreErr,
			)
		}
		s.logger.Debug("Injected credentials for %s into remote %s", cred.Username, remoteName)

		defer func() {
			if restoreErr := s.restore(ctx, remoteName, originalURL); restoreErr != nil {
				err = errors.Join(err, restoreErr)
			}
		}()
		result.Authenticated = true
	} else if !cred.IsZero() {
		s.logger.Debug("Remote %s does not use https; running %s without injected credentials", remoteName, direction)
	}

	var output string
	switch direction {
	case Pull:
		output, err = s.backend.Pull(ctx, remoteName, branch)
	default:
		output, err = s.backend.Push(ctx, remoteName, branch)
	}
	if err != nil {
		return Result{}, redactError(err, cred)
	}

	result.Output = Redact(output, cred)
	if direction == Pull && git.IsUpToDate(output) {
		result.Outcome = UpToDate
	}
	return result, nil
}

// restore writes the original URL back. It ignores cancellation of the
// caller's context so a cancelled session still restores.
func (s *Session) restore(ctx context.Context, remoteName, originalURL string) error {
	restoreCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), RestoreTimeout)
	defer cancel()

	if err := s.backend.SetRemoteURL(restoreCtx, remoteName, originalURL); err != nil {
		return gitdasherrors.NewRestoreError(remoteName, err)
	}
	s.logger.Debug("Restored url of remote %s", remoteName)
	return nil
}

// redactedError hides the credential in the message while keeping the chain
// available to errors.Is and errors.As.
type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redactError(err error, cred Credential) error {
	if err == nil || cred.IsZero() {
		return err
	}

	var transportErr *gitdasherrors.TransportError
	if errors.As(err, &transportErr) {
		clean := *transportErr
		clean.Output = Redact(transportErr.Output, cred)
		if transportErr.Err != nil {
			clean.Err = &redactedError{msg: Redact(transportErr.Err.Error(), cred), err: transportErr.Err}
		}
		return &clean
	}

	msg := Redact(err.Error(), cred)
	if msg == err.Error() {
		return err
	}
	return &redactedError{msg: msg, err: err}
}
