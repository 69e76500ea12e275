// Package errors provides sentinel errors and custom error types for the gitdash application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrRepositoryUnavailable indicates that the worktree or index cannot be read at all
	ErrRepositoryUnavailable = errors.New("repository unavailable")

	// ErrRemoteNotConfigured indicates that the named remote does not exist
	ErrRemoteNotConfigured = errors.New("remote not configured")

	// ErrNoActiveBranch indicates that HEAD is unborn or detached
	ErrNoActiveBranch = errors.New("no active branch")

	// ErrTransport indicates that a push or pull failed in the git transport
	ErrTransport = errors.New("transport error")

	// ErrAuthenticationFailed indicates that the remote rejected the credential
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrPermissionDenied indicates that the credential lacks access to the remote
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDivergedHistory indicates that the remote contains work not present locally
	ErrDivergedHistory = errors.New("diverged history")

	// ErrNetworkUnreachable indicates that the remote host could not be reached
	ErrNetworkUnreachable = errors.New("network unreachable")

	// ErrMergeConflict indicates that a pull stopped on conflicts
	ErrMergeConflict = errors.New("merge conflict")

	// ErrRestoreFailed indicates that the original remote URL could not be written back
	ErrRestoreFailed = errors.New("failed to restore remote url")

	// ErrNothingToCommit indicates that the index has no changes against HEAD
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrRepositoryExists indicates that GitHub already has a repository with the requested name
	ErrRepositoryExists = errors.New("repository name already exists")

	// ErrNotAuthenticated indicates that no GitHub token is configured
	ErrNotAuthenticated = errors.New("github token not configured")

	// ErrCurrentBranch indicates an operation that is invalid on the checked out branch
	ErrCurrentBranch = errors.New("operation not allowed on the current branch")
)

// TransportKind classifies a transport failure
type TransportKind int

const (
	// TransportOther is any failure that could not be classified
	TransportOther TransportKind = iota
	// TransportAuthenticationFailed means the credential was rejected
	TransportAuthenticationFailed
	// TransportPermissionDenied means the credential lacks access
	TransportPermissionDenied
	// TransportDivergedHistory means the push was rejected as non-fast-forward
	TransportDivergedHistory
	// TransportNetworkUnreachable means the host could not be reached
	TransportNetworkUnreachable
	// TransportMergeConflict means a pull stopped with conflicts
	TransportMergeConflict
)

func (k TransportKind) String() string {
	switch k {
	case TransportAuthenticationFailed:
		return "authentication failed"
	case TransportPermissionDenied:
		return "permission denied"
	case TransportDivergedHistory:
		return "diverged history"
	case TransportNetworkUnreachable:
		return "network unreachable"
	case TransportMergeConflict:
		return "merge conflict"
	default:
		return "other"
	}
}

func (k TransportKind) sentinel() error {
	switch k {
	case TransportAuthenticationFailed:
		return ErrAuthenticationFailed
	case TransportPermissionDenied:
		return ErrPermissionDenied
	case TransportDivergedHistory:
		return ErrDivergedHistory
	case TransportNetworkUnreachable:
		return ErrNetworkUnreachable
	case TransportMergeConflict:
		return ErrMergeConflict
	default:
		return nil
	}
}

// TransportError represents a failed push or pull
type TransportError struct {
	Direction string
	Remote    string
	Branch    string
	Kind      TransportKind
	Output    string
	Err       error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("%s %s/%s failed: %s", e.Direction, e.Remote, e.Branch, e.Kind)
	if e.Output != "" {
		msg += fmt.Sprintf("\n%s", e.Output)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is returns true for ErrTransport and for the sentinel matching Kind
func (e *TransportError) Is(target error) bool {
	if target == ErrTransport {
		return true
	}
	if s := e.Kind.sentinel(); s != nil && target == s {
		return true
	}
	return false
}

// NewTransportError creates a new TransportError
func NewTransportError(direction, remote, branch string, kind TransportKind, output string, err error) *TransportError {
	return &TransportError{
		Direction: direction,
		Remote:    remote,
		Branch:    branch,
		Kind:      kind,
		Output:    output,
		Err:       err,
	}
}

// RemoteNotConfiguredError represents a missing remote
type RemoteNotConfiguredError struct {
	Remote string
}

func (e *RemoteNotConfiguredError) Error() string {
	return fmt.Sprintf("no remote '%s' configured", e.Remote)
}

// Is returns true if the target error is ErrRemoteNotConfigured
func (e *RemoteNotConfiguredError) Is(target error) bool {
	return target == ErrRemoteNotConfigured
}

// NewRemoteNotConfiguredError creates a new RemoteNotConfiguredError
func NewRemoteNotConfiguredError(remote string) *RemoteNotConfiguredError {
	return &RemoteNotConfiguredError{Remote: remote}
}

// RestoreError represents a failure to write the original remote URL back
type RestoreError struct {
	Remote string
	Err    error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("failed to restore url of remote '%s': %v", e.Remote, e.Err)
}

func (e *RestoreError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrRestoreFailed
func (e *RestoreError) Is(target error) bool {
	return target == ErrRestoreFailed
}

// NewRestoreError creates a new RestoreError
func NewRestoreError(remote string, err error) *RestoreError {
	return &RestoreError{Remote: remote, Err: err}
}

// RepositoryUnavailableError wraps the cause of an unreadable repository
type RepositoryUnavailableError struct {
	Path string
	Err  error
}

func (e *RepositoryUnavailableError) Error() string {
	return fmt.Sprintf("repository at %s is unavailable: %v", e.Path, e.Err)
}

func (e *RepositoryUnavailableError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrRepositoryUnavailable
func (e *RepositoryUnavailableError) Is(target error) bool {
	return target == ErrRepositoryUnavailable
}

// NewRepositoryUnavailableError creates a new RepositoryUnavailableError
func NewRepositoryUnavailableError(path string, err error) *RepositoryUnavailableError {
	return &RepositoryUnavailableError{Path: path, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
