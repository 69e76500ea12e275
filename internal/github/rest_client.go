package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
)

// DefaultAPIURL is the REST endpoint of github.com
const DefaultAPIURL = "https://api.github.com/"

// listPageSize is the page size used when listing repositories
const listPageSize = 100

// RESTClient implements Client using the real GitHub API
type RESTClient struct {
	client *github.Client
	token  string
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient creates a client authenticated with token. An empty apiURL
// targets github.com; any other value is treated as a GitHub Enterprise or
// test server base URL.
func NewRESTClient(ctx context.Context, token, apiURL string) (*RESTClient, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, gitdasherrors.ErrNotAuthenticated
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if apiURL != "" && apiURL != DefaultAPIURL {
		base, err := normalizeBaseURL(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API url %q: %w", apiURL, err)
		}
		client.BaseURL = base
	}

	return &RESTClient{client: client, token: token}, nil
}

// Token returns the token the client authenticates with
func (c *RESTClient) Token() string {
	return c.token
}

// TestConnection returns the user the token authenticates as
func (c *RESTClient) TestConnection(ctx context.Context) (*User, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return nil, classify(err, "failed to get authenticated user")
	}
	return &User{
		Login: user.GetLogin(),
		Name:  user.GetName(),
	}, nil
}

// CreateRepository creates an empty repository for the authenticated user.
// The repository is not auto-initialized so a local history can be pushed.
func (c *RESTClient) CreateRepository(ctx context.Context, opts CreateRepositoryOptions) (*RepositoryInfo, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return nil, fmt.Errorf("repository name must not be empty")
	}

	repo := &github.Repository{
		Name:     github.String(name),
		Private:  github.Bool(opts.Private),
		AutoInit: github.Bool(false),
	}
	if opts.Description != "" {
		repo.Description = github.String(opts.Description)
	}

	created, _, err := c.client.Repositories.Create(ctx, "", repo)
	if err != nil {
		return nil, classify(err, "failed to create repository")
	}
	return toRepositoryInfo(created), nil
}

// ListRepositories returns every repository of the authenticated user
func (c *RESTClient) ListRepositories(ctx context.Context) ([]RepositoryInfo, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	var infos []RepositoryInfo
	for {
		repos, resp, err := c.client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, classify(err, "failed to list repositories")
		}
		for _, r := range repos {
			infos = append(infos, *toRepositoryInfo(r))
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return infos, nil
}

func classify(err error, message string) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusUnprocessableEntity:
			return fmt.Errorf("%s: %w", message, gitdasherrors.ErrRepositoryExists)
		case http.StatusUnauthorized:
			return fmt.Errorf("%s: %w", message, gitdasherrors.ErrAuthenticationFailed)
		case http.StatusForbidden:
			return fmt.Errorf("%s: %w", message, gitdasherrors.ErrPermissionDenied)
		}
	}
	return fmt.Errorf("%s: %w", message, err)
}

func normalizeBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return url.Parse(raw)
}

// toRepositoryInfo converts a github.Repository to RepositoryInfo
func toRepositoryInfo(r *github.Repository) *RepositoryInfo {
	if r == nil {
		return nil
	}
	return &RepositoryInfo{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		HTMLURL:     r.GetHTMLURL(),
		CloneURL:    r.GetCloneURL(),
		Private:     r.GetPrivate(),
	}
}
