package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gitdash.dev/gitdash/internal/config"
	gitdasherrors "gitdash.dev/gitdash/internal/errors"
	"gitdash.dev/gitdash/internal/git"
	"gitdash.dev/gitdash/internal/github"
	"gitdash.dev/gitdash/internal/tui"
)

// ErrDemoReadOnly is returned by commands that need a real repository
var ErrDemoReadOnly = errors.New("this command is not available in demo mode")

// Context provides access to the repository, config and output for commands
type Context struct {
	Backend      git.Dashboard
	Repo         *git.Repository
	Config       *config.UserConfig
	Splog        *tui.Splog
	RepoRoot     string
	GitHubClient github.Client
}

// NewContext creates a new context with the given backend
func NewContext(backend git.Dashboard) *Context {
	ctx := &Context{
		Backend: backend,
		Config:  &config.UserConfig{},
		Splog:   newSplog(),
	}
	if backend != nil {
		ctx.RepoRoot = backend.Root()
	}
	return ctx
}

// IsDemoMode returns true if GITDASH_DEMO environment variable is set
func IsDemoMode() bool {
	return os.Getenv("GITDASH_DEMO") != ""
}

// DemoBackendFactory is a function that creates a demo backend.
// This is set by the demo package to avoid circular imports.
var DemoBackendFactory func() git.Dashboard

// DemoGitHubClientFactory is a function that creates a demo GitHub client.
// This is set by the demo package to avoid circular imports.
var DemoGitHubClientFactory func() github.Client

// GetContext returns the appropriate context (demo or real) based on the
// environment. Outside demo mode it opens the repository containing the
// working directory.
func GetContext(ctx context.Context) (*Context, error) {
	if IsDemoMode() && DemoBackendFactory != nil {
		return newDemoContext()
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	repo, err := git.OpenRepository(wd)
	if err != nil {
		return nil, err
	}

	c, err := GetContextWithoutRepo(ctx)
	if err != nil {
		return nil, err
	}
	c.Backend = repo
	c.Repo = repo
	c.RepoRoot = repo.Root()
	c.Splog.Trace("opened repository %s", c.RepoRoot)
	return c, nil
}

// GetContextOptionalRepo opens the current repository when there is one
// and otherwise returns a context without it.
func GetContextOptionalRepo(ctx context.Context) (*Context, error) {
	c, err := GetContext(ctx)
	if errors.Is(err, gitdasherrors.ErrRepositoryUnavailable) {
		return GetContextWithoutRepo(ctx)
	}
	return c, err
}

// GetContextWithoutRepo returns a context for commands that do not operate
// on the current repository, such as the GitHub commands.
func GetContextWithoutRepo(ctx context.Context) (*Context, error) {
	if IsDemoMode() && DemoBackendFactory != nil {
		return newDemoContext()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	c := &Context{
		Config: cfg,
		Splog:  newSplog(),
	}

	// No token means no client; commands that need one say so
	if client, err := NewGitHubClient(ctx, cfg); err == nil {
		c.GitHubClient = client
	} else if !errors.Is(err, gitdasherrors.ErrNotAuthenticated) {
		c.Splog.Debug("GitHub client unavailable: %v", err)
	}

	return c, nil
}

// NewGitHubClient creates a REST client from the configured token
func NewGitHubClient(ctx context.Context, cfg *config.UserConfig) (github.Client, error) {
	return github.NewRESTClient(ctx, cfg.Token(), cfg.APIURL())
}

func newDemoContext() (*Context, error) {
	c := NewContext(DemoBackendFactory())
	if DemoGitHubClientFactory != nil {
		c.GitHubClient = DemoGitHubClientFactory()
	}
	return c, nil
}

// IsDemo reports whether the context runs against the demo backend
func (c *Context) IsDemo() bool {
	return c.Backend != nil && c.Repo == nil
}

// Repository returns the real repository, failing in demo mode
func (c *Context) Repository() (*git.Repository, error) {
	if c.Repo == nil {
		return nil, ErrDemoReadOnly
	}
	return c.Repo, nil
}

// RequireGitHub returns the GitHub client, failing when no token is configured
func (c *Context) RequireGitHub() (github.Client, error) {
	if c.GitHubClient == nil {
		return nil, gitdasherrors.ErrNotAuthenticated
	}
	return c.GitHubClient, nil
}

// Close releases the log file
func (c *Context) Close() {
	if c.Splog != nil {
		_ = c.Splog.Close()
	}
}

func newSplog() *tui.Splog {
	splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath())
	if err != nil {
		// Fall back to console-only logging
		return tui.NewSplog()
	}
	return splog
}
