package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DefaultBranchName is the initial branch of repositories created by InitRepository
const DefaultBranchName = "main"

// InitialCommitMessage is the message of the commit InitRepository records
const InitialCommitMessage = "Initial commit - Added README.md"

// InitRepository creates a repository in dir with a README.md and an initial commit
func InitRepository(ctx context.Context, dir string) (*Repository, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	_, err = gogit.PlainInitWithOptions(absDir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(DefaultBranchName),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init repository: %w", err)
	}

	name := filepath.Base(absDir)
	readme := fmt.Sprintf("# %s\n\nCreated with gitdash.\n", name)
	if err := os.WriteFile(filepath.Join(absDir, "README.md"), []byte(readme), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write README.md: %w", err)
	}

	repo, err := OpenRepository(absDir)
	if err != nil {
		return nil, err
	}
	if err := repo.StagePaths(ctx, "README.md"); err != nil {
		return nil, err
	}
	if _, err := repo.Commit(ctx, InitialCommitMessage); err != nil {
		return nil, err
	}

	return repo, nil
}
