package git

import "context"

// ChangeKind is the single-letter status git reports for a changed path
// (A, M, D, R, C, T, U, X, ...). Unknown letters are passed through as-is.
type ChangeKind string

// Change kinds produced by git diff --name-status
const (
	ChangeAdded       ChangeKind = "A"
	ChangeModified    ChangeKind = "M"
	ChangeDeleted     ChangeKind = "D"
	ChangeRenamed     ChangeKind = "R"
	ChangeCopied      ChangeKind = "C"
	ChangeTypeChanged ChangeKind = "T"
	ChangeUnmerged    ChangeKind = "U"
)

// Change is one entry of a two-tree comparison
type Change struct {
	Path        string
	Kind        ChangeKind
	RenamedFrom string
}

// Remote is a named remote. URL is the first configured url; a remote may
// carry more in URLs.
type Remote struct {
	Name string
	URL  string
	URLs []string
}

// Backend is the set of git capabilities the status and remote packages
// depend on. Repository implements it against a real repository; the demo
// package provides an in-memory implementation.
type Backend interface {
	// Root returns the repository working directory
	Root() string

	// ListUntracked returns paths present in the worktree but absent from the index
	ListUntracked(ctx context.Context) ([]string, error)
	// DiffWorktreeVsIndex returns changes between the index and the worktree
	DiffWorktreeVsIndex(ctx context.Context) ([]Change, error)
	// DiffIndexVsHEAD returns changes between HEAD and the index
	DiffIndexVsHEAD(ctx context.Context) ([]Change, error)
	// IsHEADValid reports whether HEAD resolves to a commit
	IsHEADValid(ctx context.Context) (bool, error)
	// CurrentBranch returns the checked out branch name
	CurrentBranch(ctx context.Context) (string, error)
	// BranchExists reports whether name is a local branch with a commit
	BranchExists(ctx context.Context, name string) (bool, error)

	// GetRemote returns the named remote or a RemoteNotConfiguredError
	GetRemote(ctx context.Context, name string) (Remote, error)
	// SetRemoteURL rewrites the first URL of the named remote. Any further
	// urls are kept as they are.
	SetRemoteURL(ctx context.Context, name, url string) error

	// Push pushes branch to remote and sets it as upstream
	Push(ctx context.Context, remote, branch string) (string, error)
	// Pull pulls branch from remote into the current branch
	Pull(ctx context.Context, remote, branch string) (string, error)
}

// Dashboard extends Backend with the read-only history queries the
// dashboard views need.
type Dashboard interface {
	Backend

	// Commits returns up to limit commits reachable from HEAD, newest first
	Commits(ctx context.Context, limit int) ([]CommitInfo, error)
	// CommitCount returns the number of commits reachable from HEAD
	CommitCount(ctx context.Context) (int, error)
	// BranchList returns all local branches
	BranchList(ctx context.Context) ([]BranchInfo, error)
}
