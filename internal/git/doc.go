// Package git provides low-level Git operations.
//
// It wraps go-git and git command execution and provides a Go-friendly interface for:
//   - Working tree state (untracked files, worktree/index and index/HEAD diffs)
//   - Remote configuration (read and rewrite remote URLs)
//   - Remote operations (push, pull)
//   - Dashboard queries (commit log, branches, stats)
//   - Staging, committing and branch mutation
//
// This package should be the only place where direct git commands are executed.
package git
