package actions

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
	"gitdash.dev/gitdash/internal/github"
	"gitdash.dev/gitdash/internal/remote"
	"gitdash.dev/gitdash/internal/runtime"
	"gitdash.dev/gitdash/internal/tui"
	"gitdash.dev/gitdash/internal/tui/style"
	"gitdash.dev/gitdash/internal/utils"
)

// GitHubSetupOptions specifies options for github setup
type GitHubSetupOptions struct {
	// Token is prompted for when empty
	Token string
	// TokenFromStdin reads the token from piped input
	TokenFromStdin bool
	// NoSave verifies the token without storing it
	NoSave bool
}

// GitHubSetupAction verifies a personal access token and stores it in the
// user config.
func GitHubSetupAction(ctx context.Context, rc *runtime.Context, opts GitHubSetupOptions) error {
	token := strings.TrimSpace(opts.Token)
	if token == "" && opts.TokenFromStdin {
		var err error
		if token, err = utils.ReadFromStdin(); err != nil {
			return fmt.Errorf("failed to read token from stdin: %w", err)
		}
	}
	if token == "" {
		rc.Splog.Tip("Create a token with the 'repo' scope at https://github.com/settings/tokens")
		var err error
		token, err = tui.PromptSecret("GitHub personal access token:")
		if err != nil {
			return fmt.Errorf("a token is required (--token): %w", err)
		}
	}

	client, err := clientForToken(ctx, rc, token)
	if err != nil {
		return err
	}
	user, err := client.TestConnection(ctx)
	if err != nil {
		return err
	}
	rc.Splog.Info("Connected as %s", user.Display())

	if opts.NoSave || rc.IsDemo() {
		return nil
	}
	rc.Config.SetGitHubToken(token)
	if err := rc.Config.Save(); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	rc.Splog.Info("Saved token to %s", rc.Config.Path())
	rc.GitHubClient = client
	return nil
}

func clientForToken(ctx context.Context, rc *runtime.Context, token string) (github.Client, error) {
	if rc.IsDemo() && rc.GitHubClient != nil {
		return rc.GitHubClient, nil
	}
	return github.NewRESTClient(ctx, token, rc.Config.APIURL())
}

// GitHubTestAction checks that the configured token works
func GitHubTestAction(ctx context.Context, rc *runtime.Context) error {
	client, err := rc.RequireGitHub()
	if err != nil {
		return err
	}
	user, err := client.TestConnection(ctx)
	if err != nil {
		return err
	}
	rc.Splog.Info("Connected as %s", user.Display())
	return nil
}

// CreateRepoOptions specifies options for github create-repo
type CreateRepoOptions struct {
	// Name defaults to the directory name of the current repository
	Name        string
	Description string
	Private     bool
	// NoRemote skips adding the new repository as a remote
	NoRemote bool
	// Push pushes the current branch after linking
	Push bool
	// Web opens the new repository in the browser
	Web bool
}

// ErrRemoteExists is returned when create-repo would replace an existing remote
var ErrRemoteExists = errors.New("remote already configured")

// CreateRepoAction creates a GitHub repository and links it as the
// configured remote of the current repository.
func CreateRepoAction(ctx context.Context, rc *runtime.Context, opts CreateRepoOptions) error {
	client, err := rc.RequireGitHub()
	if err != nil {
		return err
	}

	remoteName := rc.Config.Remote()
	link := rc.Repo != nil && !opts.NoRemote
	if link && rc.Repo.HasRemote(remoteName) {
		return fmt.Errorf("%w: this repository already has a remote '%s'", ErrRemoteExists, remoteName)
	}

	name := strings.TrimSpace(opts.Name)
	if name == "" && rc.RepoRoot != "" {
		name = utils.SanitizeRepositoryName(filepath.Base(rc.RepoRoot))
		if tui.InteractiveAllowed() {
			if name, err = tui.PromptTextInput("Repository name:", name); err != nil {
				return err
			}
		}
	}
	if name == "" {
		return fmt.Errorf("repository name cannot be empty")
	}

	var created *github.RepositoryInfo
	err = tui.RunWithSpinner(rc.Splog, "Creating GitHub repository...", func() error {
		var createErr error
		created, createErr = client.CreateRepository(ctx, github.CreateRepositoryOptions{
			Name:        name,
			Description: opts.Description,
			Private:     opts.Private,
		})
		return createErr
	})
	if err != nil {
		return err
	}
	rc.Splog.Info("Created repository %s", created.HTMLURL)
	if opts.Web {
		if err := utils.OpenBrowser(created.HTMLURL); err != nil {
			rc.Splog.Warn("%v", err)
		}
	}

	if !link {
		rc.Splog.Info("Clone URL: %s", created.CloneURL)
		return nil
	}

	if err := rc.Repo.AddRemote(ctx, remoteName, created.CloneURL); err != nil {
		return fmt.Errorf("repository created but failed to add remote: %w", err)
	}
	rc.Splog.Info("Added remote %s → %s", remoteName, created.CloneURL)

	if !opts.Push {
		rc.Splog.Tip("Run 'gitdash push' to publish your commits")
		return nil
	}
	valid, err := rc.Backend.IsHEADValid(ctx)
	if err != nil {
		return err
	}
	if !valid {
		rc.Splog.Info("Nothing to push yet")
		return nil
	}
	return PushAction(ctx, rc, PushOptions{})
}

// ListReposAction prints the repositories of the authenticated user
func ListReposAction(ctx context.Context, rc *runtime.Context) error {
	client, err := rc.RequireGitHub()
	if err != nil {
		return err
	}

	repos, err := client.ListRepositories(ctx)
	if err != nil {
		return err
	}
	if len(repos) == 0 {
		rc.Splog.Info("No repositories found")
		return nil
	}

	rc.Splog.Info("%s", style.ColorHeader(fmt.Sprintf("Your GitHub repositories (%d)", len(repos))))
	for _, r := range repos {
		line := r.Name
		if r.Private {
			line += " " + style.ColorYellow("(private)")
		}
		rc.Splog.Info("  %s %s", line, style.ColorDim(r.CloneURL))
		if r.Description != "" {
			rc.Splog.Info("      %s", r.Description)
		}
	}
	return nil
}

// AuthCheckAction reports whether push and pull on the configured remote
// will authenticate with the GitHub token.
func AuthCheckAction(ctx context.Context, rc *runtime.Context) error {
	token, source := rc.Config.TokenWithSource()
	if token == "" {
		return gitdasherrors.ErrNotAuthenticated
	}
	client, err := rc.RequireGitHub()
	if err != nil {
		return err
	}

	remoteName := rc.Config.Remote()
	endpoint, err := rc.Backend.GetRemote(ctx, remoteName)
	if err != nil {
		return err
	}

	user, err := client.TestConnection(ctx)
	if err != nil {
		return fmt.Errorf("authentication test failed: %w", err)
	}

	cred := remote.Credential{Username: user.Login, Secret: token}
	rc.Splog.Info("GitHub user: %s", user.Display())
	rc.Splog.Info("Token:       %s (from %s)", style.ColorGreen("valid"), source)
	rc.Splog.Info("Remote URL:  %s", remote.Redact(endpoint.URL, cred))

	lower := strings.ToLower(endpoint.URL)
	switch {
	case remote.SupportsEmbeddedCredentials(endpoint.URL):
		rc.Splog.Info("Using HTTPS (token authentication)")
	case strings.HasPrefix(lower, "git@") || strings.HasPrefix(lower, "ssh://"):
		rc.Splog.Info("Using SSH (key authentication)")
		rc.Splog.Warn("gitdash authenticates with the token only over HTTPS; consider an https remote URL")
	default:
		rc.Splog.Info("Remote does not use a network transport; no authentication needed")
	}
	return nil
}
