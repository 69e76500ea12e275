// Package demo provides a simulated repository for exercising the dashboard
// without a real git repository. Tests use it as an in-memory backend.
package demo

import (
	"time"

	"gitdash.dev/gitdash/internal/git"
)

// Branch represents a simulated branch
type Branch struct {
	Name    string
	Hash    string
	Commits int
}

var demoBranches = []Branch{
	{Name: "main", Hash: "4f2a9c1e7b3d5a8f0c6e2b9d1a7f3c5e8b0d2a4f", Commits: 12},
	{Name: "feature/login-form", Hash: "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678", Commits: 3},
	{Name: "fix/readme-typo", Hash: "0f9e8d7c6b5a49382716a5b4c3d2e1f0a9b8c7d6", Commits: 1},
}

var demoCommits = []git.CommitInfo{
	{Hash: "4f2a9c1e7b3d5a8f0c6e2b9d1a7f3c5e8b0d2a4f", Author: "Ada Lovelace", AuthorEmail: "ada@example.com", Summary: "Add status view"},
	{Hash: "9c8b7a6f5e4d3c2b1a0f9e8d7c6b5a4f3e2d1c0b", Author: "Grace Hopper", AuthorEmail: "grace@example.com", Summary: "Wire GitHub authentication"},
	{Hash: "1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b", Author: "Ada Lovelace", AuthorEmail: "ada@example.com", Summary: "Initial commit - Added README.md"},
}

var demoUntracked = []string{"notes/todo.md", "scratch.txt"}

var demoUnstaged = []git.Change{
	{Path: "README.md", Kind: git.ChangeModified},
	{Path: "internal/app.go", Kind: git.ChangeModified},
}

var demoStaged = []git.Change{
	{Path: "internal/app.go", Kind: git.ChangeModified},
	{Path: "docs/usage.md", Kind: git.ChangeAdded},
	{Path: "cmd/main.go", Kind: git.ChangeRenamed, RenamedFrom: "main.go"},
	{Path: "old.txt", Kind: git.ChangeDeleted},
}

func demoCommitTimes() []git.CommitInfo {
	now := time.Now()
	commits := make([]git.CommitInfo, len(demoCommits))
	for i, c := range demoCommits {
		c.ShortHash = c.Hash[:8]
		c.When = now.Add(-time.Duration(i+1) * 6 * time.Hour)
		commits[i] = c
	}
	return commits
}
