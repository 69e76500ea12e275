package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
)

// Repository wraps a go-git repository and a command runner rooted at its worktree
type Repository struct {
	*gogit.Repository
	path   string
	runner *CommandRunner
}

var _ Dashboard = (*Repository)(nil)

// OpenRepository opens the git repository containing path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, gitdasherrors.NewRepositoryUnavailableError(absPath, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		// bare repositories have no worktree to reconcile
		return nil, gitdasherrors.NewRepositoryUnavailableError(absPath, err)
	}
	root := worktree.Filesystem.Root()

	return &Repository{
		Repository: repo,
		path:       root,
		runner:     NewCommandRunner(root),
	}, nil
}

// Root returns the root directory of the repository
func (r *Repository) Root() string {
	return r.path
}

// Runner returns the command runner bound to the repository root
func (r *Repository) Runner() *CommandRunner {
	return r.runner
}

// IsHEADValid reports whether HEAD points at a commit. An unborn branch is
// not an error.
func (r *Repository) IsHEADValid(_ context.Context) (bool, error) {
	_, err := r.Head()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	return false, gitdasherrors.NewRepositoryUnavailableError(r.path, err)
}

// HeadBranchName returns the branch HEAD refers to, even when it is unborn.
// It returns an empty string for a detached HEAD.
func (r *Repository) HeadBranchName() (string, error) {
	ref, err := r.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch() {
		return ref.Target().Short(), nil
	}
	return "", nil
}

// CurrentBranch returns the current branch name. Unborn and detached HEADs
// yield ErrNoActiveBranch.
func (r *Repository) CurrentBranch(_ context.Context) (string, error) {
	head, err := r.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", fmt.Errorf("%w: branch has no commits yet", gitdasherrors.ErrNoActiveBranch)
		}
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("%w: HEAD is detached", gitdasherrors.ErrNoActiveBranch)
	}

	return head.Name().Short(), nil
}

// GetRemote returns the named remote
func (r *Repository) GetRemote(_ context.Context, name string) (Remote, error) {
	remote, err := r.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return Remote{}, gitdasherrors.NewRemoteNotConfiguredError(name)
		}
		return Remote{}, fmt.Errorf("failed to read remote %s: %w", name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return Remote{}, gitdasherrors.NewRemoteNotConfiguredError(name)
	}
	return Remote{Name: name, URL: urls[0], URLs: append([]string{}, urls...)}, nil
}

// SetRemoteURL rewrites the first URL of an existing remote in .git/config.
// Additional urls added with `git remote set-url --add` are left in place.
func (r *Repository) SetRemoteURL(_ context.Context, name, url string) error {
	cfg, err := r.Config()
	if err != nil {
		return fmt.Errorf("failed to read repository config: %w", err)
	}

	remote, ok := cfg.Remotes[name]
	if !ok {
		return gitdasherrors.NewRemoteNotConfiguredError(name)
	}
	if len(remote.URLs) == 0 {
		remote.URLs = []string{url}
	} else {
		urls := append([]string{}, remote.URLs...)
		urls[0] = url
		remote.URLs = urls
	}

	if err := r.Storer.SetConfig(cfg); err != nil {
		return fmt.Errorf("failed to write url of remote %s: %w", name, err)
	}
	return nil
}

// AddRemote creates a new remote pointing at url
func (r *Repository) AddRemote(_ context.Context, name, url string) error {
	_, err := r.CreateRemote(&config.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	if err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// HasRemote reports whether the named remote exists
func (r *Repository) HasRemote(name string) bool {
	_, err := r.Remote(name)
	return err == nil
}
