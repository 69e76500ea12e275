// Package github provides a client for the GitHub API operations gitdash uses:
// identifying the token's user, creating repositories and listing them.
package github

import "context"

// User is the account a token belongs to
type User struct {
	Login string
	Name  string
}

// Display returns "login (name)" or just the login when no name is set
func (u User) Display() string {
	if u.Name == "" {
		return u.Login
	}
	return u.Login + " (" + u.Name + ")"
}

// RepositoryInfo contains information about a repository
// This is a simplified struct to avoid coupling to go-github library
type RepositoryInfo struct {
	Name        string
	Description string
	HTMLURL     string
	CloneURL    string
	Private     bool
}

// CreateRepositoryOptions describes a repository to create
type CreateRepositoryOptions struct {
	Name        string
	Description string
	Private     bool
}

// Client is an interface for GitHub API interactions
type Client interface {
	// TestConnection returns the user the token authenticates as
	TestConnection(ctx context.Context) (*User, error)

	// CreateRepository creates an empty repository owned by the user and returns it
	CreateRepository(ctx context.Context, opts CreateRepositoryOptions) (*RepositoryInfo, error)

	// ListRepositories returns the repositories of the authenticated user
	ListRepositories(ctx context.Context) ([]RepositoryInfo, error)
}
