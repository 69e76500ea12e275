package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gh "gitdash.dev/gitdash/internal/github"
)

const (
	// DefaultRemote is the remote used when none is configured
	DefaultRemote = "origin"
	// DefaultCommitLogLimit is the number of commits shown by default
	DefaultCommitLogLimit = 100
)

// UserConfig represents the user configuration
type UserConfig struct {
	GitHubToken    *string `json:"github_token,omitempty"`
	GitHubAPIURL   *string `json:"github_api_url,omitempty"`
	DefaultRemote  *string `json:"default_remote,omitempty"`
	CommitLogLimit *int    `json:"commit_log_limit,omitempty"`

	path string
}

// GetConfigPath returns the path of the config file.
// If GITDASH_CONFIG is set, uses that path.
// Otherwise, uses ~/.gitdash/config.json
func GetConfigPath() (string, error) {
	if customPath := os.Getenv("GITDASH_CONFIG"); customPath != "" {
		return customPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(homeDir, ".gitdash", "config.json"), nil
}

// Load reads the user configuration from the default path
func Load() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the user configuration at path. A missing file yields defaults.
func LoadFrom(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &UserConfig{path: path}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := UserConfig{path: path}
	if len(strings.TrimSpace(string(data))) == 0 {
		return &config, nil
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// Path returns the file the config was loaded from
func (c *UserConfig) Path() string {
	return c.path
}

// Save writes the configuration back to its file
func (c *UserConfig) Save() error {
	if c.path == "" {
		path, err := GetConfigPath()
		if err != nil {
			return err
		}
		c.path = path
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(c.path, configJSON, 0600)
}

// SetGitHubToken stores a token. An empty token removes it.
func (c *UserConfig) SetGitHubToken(token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		c.GitHubToken = nil
		return
	}
	c.GitHubToken = &token
}

// TokenSourceFile names the config file as the origin of a token
const TokenSourceFile = "config file"

// Token returns the GitHub token from the environment or the config file.
// GITDASH_GITHUB_TOKEN wins over GITHUB_TOKEN, which wins over the file.
func (c *UserConfig) Token() string {
	token, _ := c.TokenWithSource()
	return token
}

// TokenWithSource returns the token and where it came from: the name of the
// environment variable or TokenSourceFile. Both are empty without a token.
func (c *UserConfig) TokenWithSource() (string, string) {
	for _, key := range []string{"GITDASH_GITHUB_TOKEN", "GITHUB_TOKEN"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value, key
		}
	}
	if c.GitHubToken != nil {
		if token := strings.TrimSpace(*c.GitHubToken); token != "" {
			return token, TokenSourceFile
		}
	}
	return "", ""
}

// APIURL returns the GitHub REST endpoint
func (c *UserConfig) APIURL() string {
	if c.GitHubAPIURL != nil && *c.GitHubAPIURL != "" {
		return *c.GitHubAPIURL
	}
	return gh.DefaultAPIURL
}

// Remote returns the remote used for push and pull
func (c *UserConfig) Remote() string {
	if c.DefaultRemote != nil && *c.DefaultRemote != "" {
		return *c.DefaultRemote
	}
	return DefaultRemote
}

// LogLimit returns the number of commits the log shows
func (c *UserConfig) LogLimit() int {
	if c.CommitLogLimit != nil && *c.CommitLogLimit > 0 {
		return *c.CommitLogLimit
	}
	return DefaultCommitLogLimit
}
