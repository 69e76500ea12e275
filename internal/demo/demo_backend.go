package demo

import (
	"context"
	"sync"
	"time"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
	"gitdash.dev/gitdash/internal/git"
)

// DemoRemoteURL is the origin URL of the demo repository
const DemoRemoteURL = "https://github.com/gitdash/demo.git"

// TransportFunc simulates a push or pull. It receives the remote URL as it
// is configured while the transport runs.
type TransportFunc func(ctx context.Context, remoteURL, branch string) (string, error)

// Backend implements git.Dashboard in memory. Exported fields configure the
// simulated repository and must be set before the backend is shared.
type Backend struct {
	RootDir   string
	HeadValid bool
	Branch    string
	Untracked []string
	Unstaged  []git.Change
	Staged    []git.Change
	Branches  []Branch
	History   []git.CommitInfo

	// ReadErr is returned by the untracked scan and both diffs
	ReadErr error
	// PushFunc and PullFunc replace the default successful transport
	PushFunc TransportFunc
	PullFunc TransportFunc
	// SetURLFunc, when set, can fail a URL write before it is applied
	SetURLFunc func(name, url string) error
	// Latency is added to the default push and pull
	Latency time.Duration

	mu        sync.Mutex
	remotes   map[string]string
	urlWrites []string
	diffCalls int
}

var _ git.Dashboard = (*Backend)(nil)

// NewBackend creates an empty repository with an unborn HEAD on main
func NewBackend() *Backend {
	return &Backend{
		RootDir: "/demo/repo",
		Branch:  "main",
		remotes: make(map[string]string),
	}
}

// NewDemoBackend creates a populated repository with an https origin
func NewDemoBackend() *Backend {
	b := NewBackend()
	b.HeadValid = true
	b.Untracked = append([]string{}, demoUntracked...)
	b.Unstaged = append([]git.Change{}, demoUnstaged...)
	b.Staged = append([]git.Change{}, demoStaged...)
	b.Branches = append([]Branch{}, demoBranches...)
	b.History = demoCommitTimes()
	b.remotes["origin"] = DemoRemoteURL
	return b
}

// AddRemote registers a remote
func (b *Backend) AddRemote(name, url string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.remotes[name] = url
}

// RemoteURL returns the URL currently configured for name
func (b *Backend) RemoteURL(name string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remotes[name]
}

// URLWrites returns every URL passed to SetRemoteURL, in order
func (b *Backend) URLWrites() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string{}, b.urlWrites...)
}

// DiffCalls returns how many diffs were computed
func (b *Backend) DiffCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.diffCalls
}

// Root returns the simulated repository root
func (b *Backend) Root() string {
	return b.RootDir
}

// ListUntracked returns the configured untracked paths
func (b *Backend) ListUntracked(_ context.Context) ([]string, error) {
	if b.ReadErr != nil {
		return nil, b.ReadErr
	}
	return append([]string{}, b.Untracked...), nil
}

// DiffWorktreeVsIndex returns the configured unstaged changes
func (b *Backend) DiffWorktreeVsIndex(_ context.Context) ([]git.Change, error) {
	return b.diff(b.Unstaged)
}

// DiffIndexVsHEAD returns the configured staged changes. Like git, it fails
// when HEAD is unborn.
func (b *Backend) DiffIndexVsHEAD(_ context.Context) ([]git.Change, error) {
	if !b.HeadValid {
		return nil, gitdasherrors.NewGitCommandError("git", []string{"diff", "--cached", "HEAD"}, "", "fatal: bad revision 'HEAD'", nil)
	}
	return b.diff(b.Staged)
}

func (b *Backend) diff(changes []git.Change) ([]git.Change, error) {
	b.mu.Lock()
	b.diffCalls++
	b.mu.Unlock()
	if b.ReadErr != nil {
		return nil, b.ReadErr
	}
	return append([]git.Change{}, changes...), nil
}

// IsHEADValid reports the configured HEAD state
func (b *Backend) IsHEADValid(_ context.Context) (bool, error) {
	return b.HeadValid, nil
}

// CurrentBranch returns the configured branch, failing like git for unborn or detached HEADs
func (b *Backend) CurrentBranch(_ context.Context) (string, error) {
	if !b.HeadValid || b.Branch == "" {
		return "", gitdasherrors.ErrNoActiveBranch
	}
	return b.Branch, nil
}

// BranchExists reports whether name is the current or a listed branch.
// Nothing exists before the first commit.
func (b *Backend) BranchExists(_ context.Context, name string) (bool, error) {
	if !b.HeadValid {
		return false, nil
	}
	if name == b.Branch {
		return true, nil
	}
	for _, br := range b.Branches {
		if br.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// GetRemote returns the named remote
func (b *Backend) GetRemote(_ context.Context, name string) (git.Remote, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	url, ok := b.remotes[name]
	if !ok {
		return git.Remote{}, gitdasherrors.NewRemoteNotConfiguredError(name)
	}
	return git.Remote{Name: name, URL: url, URLs: []string{url}}, nil
}

// SetRemoteURL records and applies a URL write
func (b *Backend) SetRemoteURL(_ context.Context, name, url string) error {
	if b.SetURLFunc != nil {
		if err := b.SetURLFunc(name, url); err != nil {
			return err
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.remotes[name]; !ok {
		return gitdasherrors.NewRemoteNotConfiguredError(name)
	}
	b.remotes[name] = url
	b.urlWrites = append(b.urlWrites, url)
	return nil
}

// Push simulates git push
func (b *Backend) Push(ctx context.Context, remote, branch string) (string, error) {
	if b.PushFunc != nil {
		return b.PushFunc(ctx, b.RemoteURL(remote), branch)
	}
	if err := simulateDelay(ctx, b.Latency); err != nil {
		return "", err
	}
	return "To " + DemoRemoteURL + "\n*\trefs/heads/" + branch + ":refs/heads/" + branch + "\t[new branch]\nDone", nil
}

// Pull simulates git pull
func (b *Backend) Pull(ctx context.Context, remote, branch string) (string, error) {
	if b.PullFunc != nil {
		return b.PullFunc(ctx, b.RemoteURL(remote), branch)
	}
	if err := simulateDelay(ctx, b.Latency); err != nil {
		return "", err
	}
	return "Already up to date.", nil
}

// Commits returns the simulated history
func (b *Backend) Commits(_ context.Context, limit int) ([]git.CommitInfo, error) {
	if !b.HeadValid {
		return []git.CommitInfo{}, nil
	}
	if limit <= 0 || limit > len(b.History) {
		limit = len(b.History)
	}
	return append([]git.CommitInfo{}, b.History[:limit]...), nil
}

// CommitCount returns the size of the simulated history
func (b *Backend) CommitCount(_ context.Context) (int, error) {
	if !b.HeadValid {
		return 0, nil
	}
	return len(b.History), nil
}

// BranchList returns the simulated branches
func (b *Backend) BranchList(_ context.Context) ([]git.BranchInfo, error) {
	infos := make([]git.BranchInfo, len(b.Branches))
	for i, br := range b.Branches {
		infos[i] = git.BranchInfo{Name: br.Name, Hash: br.Hash, Current: br.Name == b.Branch}
	}
	return infos, nil
}
