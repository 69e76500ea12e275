package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitdash.dev/gitdash/internal/config"
	gh "gitdash.dev/gitdash/internal/github"
)

func clearTokenEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITDASH_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")

		cfg, err := config.LoadFrom(path)
		require.NoError(t, err)
		require.Equal(t, path, cfg.Path())
		require.Equal(t, "origin", cfg.Remote())
		require.Equal(t, 100, cfg.LogLimit())
		require.Equal(t, gh.DefaultAPIURL, cfg.APIURL())
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		_, err := config.LoadFrom(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("reads configured values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		content := `{"default_remote": "upstream", "commit_log_limit": 25, "github_api_url": "https://ghe.example.com/api/v3/"}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := config.LoadFrom(path)
		require.NoError(t, err)
		require.Equal(t, "upstream", cfg.Remote())
		require.Equal(t, 25, cfg.LogLimit())
		require.Equal(t, "https://ghe.example.com/api/v3/", cfg.APIURL())
	})
}

func TestSave(t *testing.T) {
	clearTokenEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)
	cfg.SetGitHubToken("  ghp_secret  ")
	require.NoError(t, cfg.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reloaded, err := config.LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, "ghp_secret", reloaded.Token())

	reloaded.SetGitHubToken("")
	require.NoError(t, reloaded.Save())
	cleared, err := config.LoadFrom(path)
	require.NoError(t, err)
	require.Nil(t, cleared.GitHubToken)
}

func TestToken(t *testing.T) {
	fileToken := "from-file"
	cfg := &config.UserConfig{GitHubToken: &fileToken}

	t.Run("config file when environment is empty", func(t *testing.T) {
		clearTokenEnv(t)
		require.Equal(t, "from-file", cfg.Token())
	})

	t.Run("GITHUB_TOKEN overrides the file", func(t *testing.T) {
		clearTokenEnv(t)
		t.Setenv("GITHUB_TOKEN", "from-github-env")
		require.Equal(t, "from-github-env", cfg.Token())
	})

	t.Run("GITDASH_GITHUB_TOKEN wins", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "from-github-env")
		t.Setenv("GITDASH_GITHUB_TOKEN", "from-gitdash-env")
		require.Equal(t, "from-gitdash-env", cfg.Token())
	})
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("GITDASH_CONFIG", "/tmp/gitdash.json")
	path, err := config.GetConfigPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/gitdash.json", path)

	home := t.TempDir()
	t.Setenv("GITDASH_CONFIG", "")
	t.Setenv("HOME", home)
	path, err = config.GetConfigPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".gitdash", "config.json"), path)
}

func TestTokenWithSource(t *testing.T) {
	clearTokenEnv(t)

	empty := &config.UserConfig{}
	token, source := empty.TokenWithSource()
	require.Empty(t, token)
	require.Empty(t, source)

	fileToken := "from-file"
	cfg := &config.UserConfig{GitHubToken: &fileToken}
	token, source = cfg.TokenWithSource()
	require.Equal(t, "from-file", token)
	require.Equal(t, config.TokenSourceFile, source)

	t.Setenv("GITHUB_TOKEN", "from-env")
	token, source = cfg.TokenWithSource()
	require.Equal(t, "from-env", token)
	require.Equal(t, "GITHUB_TOKEN", source)
}
