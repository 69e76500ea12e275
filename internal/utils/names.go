package utils

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxRepositoryNameLength is the longest repository name GitHub accepts
	MaxRepositoryNameLength = 100
)

var (
	// repositoryNameReplaceRegex matches characters GitHub does not allow in repository names
	repositoryNameReplaceRegex = regexp.MustCompile(`[^-_.a-zA-Z0-9]+`)

	hyphenRunRegex = regexp.MustCompile(`-+`)
)

// SanitizeRepositoryName turns a directory name into a repository name GitHub accepts
func SanitizeRepositoryName(name string) string {
	name = repositoryNameReplaceRegex.ReplaceAllString(strings.TrimSpace(name), "-")
	name = hyphenRunRegex.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")

	if len(name) > MaxRepositoryNameLength {
		name = strings.TrimSuffix(name[:MaxRepositoryNameLength], "-")
	}
	return name
}

// ValidateBranchName rejects names git would refuse as a branch
func ValidateBranchName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("branch name must not be empty")
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("branch name %q must not start with '-'", name)
	case strings.HasSuffix(name, "/") || strings.HasSuffix(name, "."):
		return fmt.Errorf("branch name %q must not end with '/' or '.'", name)
	case strings.HasSuffix(name, ".lock"):
		return fmt.Errorf("branch name %q must not end with '.lock'", name)
	case strings.Contains(name, "..") || strings.Contains(name, "//") || strings.Contains(name, "@{"):
		return fmt.Errorf("branch name %q contains an invalid sequence", name)
	case name == "@":
		return fmt.Errorf("branch name must not be '@'")
	}

	for _, r := range name {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(" ~^:?*[\\", r) {
			return fmt.Errorf("branch name %q contains invalid character %q", name, r)
		}
	}
	return nil
}
