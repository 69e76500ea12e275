package testhelpers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/require"

	gh "gitdash.dev/gitdash/internal/github"
)

// MockGitHubToken is the token the mock server accepts by default
const MockGitHubToken = "ghp_mocktoken1234567890"

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// Token is the only bearer token accepted
	Token string
	// Login and Name describe the authenticated user
	Login string
	Name  string
	// Repos are the repositories owned by the user
	Repos []*github.Repository
	// CreatedRepos records every successful create request
	CreatedRepos []*github.Repository
	// ForbidCreate makes repository creation fail with 403
	ForbidCreate bool

	mu sync.Mutex
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		Token: MockGitHubToken,
		Login: "octocat",
		Name:  "The Octocat",
		Repos: []*github.Repository{},
	}
}

// Created returns a snapshot of the repositories created so far
func (c *MockGitHubServerConfig) Created() []*github.Repository {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*github.Repository{}, c.CreatedRepos...)
}

// NewMockGitHubServer creates an httptest server that mocks the user and
// repository endpoints of the GitHub API
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	t.Helper()
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r, config) {
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, &github.User{
			Login: github.String(config.Login),
			Name:  github.String(config.Name),
		})
	})

	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r, config) {
			return
		}

		switch r.Method {
		case http.MethodGet:
			config.mu.Lock()
			repos := append([]*github.Repository{}, config.Repos...)
			config.mu.Unlock()
			writeJSON(w, http.StatusOK, repos)

		case http.MethodPost:
			if config.ForbidCreate {
				writeJSON(w, http.StatusForbidden, map[string]string{"message": "Resource not accessible by integration"})
				return
			}

			var req github.Repository
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Problems parsing JSON"})
				return
			}

			name := req.GetName()
			config.mu.Lock()
			defer config.mu.Unlock()
			for _, existing := range config.Repos {
				if strings.EqualFold(existing.GetName(), name) {
					writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
						"message": "Repository creation failed.",
						"errors": []map[string]string{
							{"resource": "Repository", "code": "custom", "field": "name", "message": "name already exists on this account"},
						},
					})
					return
				}
			}

			created := &github.Repository{
				Name:        github.String(name),
				FullName:    github.String(config.Login + "/" + name),
				Description: req.Description,
				Private:     github.Bool(req.GetPrivate()),
				HTMLURL:     github.String(fmt.Sprintf("https://github.com/%s/%s", config.Login, name)),
				CloneURL:    github.String(fmt.Sprintf("https://github.com/%s/%s.git", config.Login, name)),
			}
			config.Repos = append(config.Repos, created)
			config.CreatedRepos = append(config.CreatedRepos, created)
			writeJSON(w, http.StatusCreated, created)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// NewMockGitHubClient starts a mock server and returns a REST client
// authenticated against it with token.
func NewMockGitHubClient(t *testing.T, config *MockGitHubServerConfig, token string) (*gh.RESTClient, *MockGitHubServerConfig) {
	t.Helper()
	if config == nil {
		config = NewMockGitHubServerConfig()
	}
	server := NewMockGitHubServer(t, config)

	client, err := gh.NewRESTClient(context.Background(), token, server.URL+"/")
	require.NoError(t, err)
	return client, config
}

func authorized(w http.ResponseWriter, r *http.Request, config *MockGitHubServerConfig) bool {
	if r.Header.Get("Authorization") != "Bearer "+config.Token {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
