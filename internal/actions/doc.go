// Package actions provides the logic behind each gitdash command.
//
// Each action corresponds to a gitdash command (status, push, github create-repo, etc.)
// and orchestrates operations across the git, status, remote and github packages.
//
// Key patterns:
//   - Actions accept a runtime.Context which provides the backend, config and Splog
//   - Read-only views work against any git.Dashboard, including the demo backend
//   - Mutating actions require a real repository
//   - Actions handle user interaction through the tui package
package actions
