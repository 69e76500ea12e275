package demo

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
	"gitdash.dev/gitdash/internal/github"
	"gitdash.dev/gitdash/internal/git"
	"gitdash.dev/gitdash/internal/runtime"
)

// Delay constants for simulating real operations
const (
	delayShort  = 150 * time.Millisecond
	delayMedium = 300 * time.Millisecond
)

// DemoLogin is the account the demo GitHub client authenticates as
const DemoLogin = "octo-demo"

func init() {
	// Register the demo factories with runtime package
	runtime.DemoBackendFactory = func() git.Dashboard {
		b := NewDemoBackend()
		b.Latency = delayMedium
		return b
	}
	runtime.DemoGitHubClientFactory = func() github.Client {
		c := NewDemoGitHubClient()
		c.Latency = delayShort
		return c
	}
}

// simulateDelay sleeps for d unless ctx ends first
func simulateDelay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DemoGitHubClient implements github.Client in memory
type DemoGitHubClient struct {
	// Latency is added to every call
	Latency time.Duration

	mu    sync.Mutex
	user  github.User
	repos []github.RepositoryInfo
}

var _ github.Client = (*DemoGitHubClient)(nil)

// NewDemoGitHubClient creates a new demo GitHub client
func NewDemoGitHubClient() *DemoGitHubClient {
	return &DemoGitHubClient{
		user: github.User{Login: DemoLogin, Name: "Octo Demo"},
		repos: []github.RepositoryInfo{
			demoRepository("demo", "Repository behind the demo dashboard", false),
			demoRepository("dotfiles", "", true),
		},
	}
}

func demoRepository(name, description string, private bool) github.RepositoryInfo {
	return github.RepositoryInfo{
		Name:        name,
		Description: description,
		HTMLURL:     fmt.Sprintf("https://github.com/%s/%s", DemoLogin, name),
		CloneURL:    fmt.Sprintf("https://github.com/%s/%s.git", DemoLogin, name),
		Private:     private,
	}
}

// TestConnection returns the demo user
func (c *DemoGitHubClient) TestConnection(ctx context.Context) (*github.User, error) {
	if err := simulateDelay(ctx, c.Latency); err != nil {
		return nil, err
	}
	user := c.user
	return &user, nil
}

// CreateRepository records a simulated repository
func (c *DemoGitHubClient) CreateRepository(ctx context.Context, opts github.CreateRepositoryOptions) (*github.RepositoryInfo, error) {
	if err := simulateDelay(ctx, c.Latency); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return nil, fmt.Errorf("repository name must not be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.repos {
		if strings.EqualFold(r.Name, name) {
			return nil, fmt.Errorf("failed to create repository: %w", gitdasherrors.ErrRepositoryExists)
		}
	}
	repo := demoRepository(name, opts.Description, opts.Private)
	c.repos = append(c.repos, repo)
	return &repo, nil
}

// ListRepositories returns the simulated repositories
func (c *DemoGitHubClient) ListRepositories(ctx context.Context) ([]github.RepositoryInfo, error) {
	if err := simulateDelay(ctx, c.Latency); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]github.RepositoryInfo{}, c.repos...), nil
}
