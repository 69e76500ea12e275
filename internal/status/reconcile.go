// Package status classifies every changed path of a repository by comparing
// HEAD, the index and the worktree.
package status

import (
	"context"
	"errors"
	"fmt"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
	"gitdash.dev/gitdash/internal/git"
)

// State is the classification of one path in one comparison
type State int

const (
	// Unknown carries a change kind the reconciler does not recognize
	Unknown State = iota
	// Untracked paths exist in the worktree but not in the index
	Untracked
	// ModifiedUnstaged paths differ between the index and the worktree
	ModifiedUnstaged
	// StagedAdded paths are in the index but not in HEAD
	StagedAdded
	// StagedModified paths differ between HEAD and the index
	StagedModified
	// StagedDeleted paths are in HEAD but removed from the index
	StagedDeleted
	// Renamed paths were detected as moved from RenamedFrom
	Renamed
)

func (s State) String() string {
	switch s {
	case Untracked:
		return "untracked"
	case ModifiedUnstaged:
		return "modified"
	case StagedAdded:
		return "added"
	case StagedModified:
		return "staged"
	case StagedDeleted:
		return "deleted"
	case Renamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Category groups entries by the comparison that produced them
type Category int

const (
	// CategoryUntracked entries come from the untracked scan
	CategoryUntracked Category = iota
	// CategoryUnstaged entries come from the worktree/index comparison
	CategoryUnstaged
	// CategoryStaged entries come from the index/HEAD comparison
	CategoryStaged
)

// PathStatus is one classified path
type PathStatus struct {
	Path        string
	State       State
	Category    Category
	RenamedFrom string
	// RawKind is the backend's change kind, kept so Unknown entries are not lost
	RawKind string
}

// Source is the part of git.Backend the reconciler reads from
type Source interface {
	ListUntracked(ctx context.Context) ([]string, error)
	DiffWorktreeVsIndex(ctx context.Context) ([]git.Change, error)
	DiffIndexVsHEAD(ctx context.Context) ([]git.Change, error)
	IsHEADValid(ctx context.Context) (bool, error)
}

// Reconcile returns untracked entries, then unstaged entries, then staged
// entries. A path appears at most once per category. When HEAD is unborn
// only untracked entries are produced. The call never mutates the repository.
func Reconcile(ctx context.Context, src Source) ([]PathStatus, error) {
	untracked, err := src.ListUntracked(ctx)
	if err != nil {
		return nil, unavailable(err)
	}

	result := make([]PathStatus, 0, len(untracked))
	seen := make(map[string]bool, len(untracked))
	for _, path := range untracked {
		if seen[path] {
			continue
		}
		seen[path] = true
		result = append(result, PathStatus{
			Path:     path,
			State:    Untracked,
			Category: CategoryUntracked,
			RawKind:  "?",
		})
	}

	valid, err := src.IsHEADValid(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	if !valid {
		return result, nil
	}

	unstaged, err := src.DiffWorktreeVsIndex(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	result = appendChanges(result, unstaged, CategoryUnstaged, unstagedState)

	staged, err := src.DiffIndexVsHEAD(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	result = appendChanges(result, staged, CategoryStaged, stagedState)

	return result, nil
}

func appendChanges(result []PathStatus, changes []git.Change, category Category, classify func(git.ChangeKind) State) []PathStatus {
	seen := make(map[string]bool, len(changes))
	for _, c := range changes {
		if seen[c.Path] {
			continue
		}
		seen[c.Path] = true

		entry := PathStatus{
			Path:     c.Path,
			State:    classify(c.Kind),
			Category: category,
			RawKind:  string(c.Kind),
		}
		if entry.State == Renamed {
			entry.RenamedFrom = c.RenamedFrom
		}
		result = append(result, entry)
	}
	return result
}

func unstagedState(kind git.ChangeKind) State {
	switch kind {
	case git.ChangeModified, git.ChangeAdded, git.ChangeDeleted, git.ChangeTypeChanged, git.ChangeUnmerged:
		return ModifiedUnstaged
	case git.ChangeRenamed:
		return Renamed
	default:
		return Unknown
	}
}

func stagedState(kind git.ChangeKind) State {
	switch kind {
	case git.ChangeAdded, git.ChangeCopied:
		return StagedAdded
	case git.ChangeModified, git.ChangeTypeChanged:
		return StagedModified
	case git.ChangeDeleted:
		return StagedDeleted
	case git.ChangeRenamed:
		return Renamed
	default:
		return Unknown
	}
}

func unavailable(err error) error {
	if errors.Is(err, gitdasherrors.ErrRepositoryUnavailable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", gitdasherrors.ErrRepositoryUnavailable, err)
}
