package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// DefaultCommitLogLimit is the number of commits shown when no limit is given
const DefaultCommitLogLimit = 100

// CommitInfo describes one commit in the history view
type CommitInfo struct {
	Hash        string
	ShortHash   string
	Author      string
	AuthorEmail string
	When        time.Time
	Summary     string
}

// BranchInfo describes a local branch
type BranchInfo struct {
	Name    string
	Hash    string
	Current bool
}

// Commits returns up to limit commits reachable from HEAD, newest first.
// An unborn HEAD yields an empty list.
func (r *Repository) Commits(ctx context.Context, limit int) ([]CommitInfo, error) {
	if limit <= 0 {
		limit = DefaultCommitLogLimit
	}

	valid, err := r.IsHEADValid(ctx)
	if err != nil {
		return nil, err
	}
	if !valid {
		return []CommitInfo{}, nil
	}

	iter, err := r.Log(&gogit.LogOptions{Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("failed to read commit log: %w", err)
	}
	defer iter.Close()

	commits := make([]CommitInfo, 0, limit)
	err = iter.ForEach(func(c *object.Commit) error {
		if len(commits) >= limit {
			return storer.ErrStop
		}
		commits = append(commits, toCommitInfo(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate commit log: %w", err)
	}

	return commits, nil
}

// CommitCount returns the number of commits reachable from HEAD
func (r *Repository) CommitCount(ctx context.Context) (int, error) {
	valid, err := r.IsHEADValid(ctx)
	if err != nil || !valid {
		return 0, err
	}

	iter, err := r.Log(&gogit.LogOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to read commit log: %w", err)
	}
	defer iter.Close()

	count := 0
	err = iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	return count, err
}

// BranchList returns all local branches, marking the checked out one
func (r *Repository) BranchList(_ context.Context) ([]BranchInfo, error) {
	current := ""
	if head, err := r.Head(); err == nil && head.Name().IsBranch() {
		current = head.Name().Short()
	} else if err != nil && !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var infos []BranchInfo
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		infos = append(infos, BranchInfo{
			Name:    name,
			Hash:    ref.Hash().String(),
			Current: name == current,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return infos, nil
}

func toCommitInfo(c *object.Commit) CommitInfo {
	hash := c.Hash.String()
	summary, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	return CommitInfo{
		Hash:        hash,
		ShortHash:   hash[:8],
		Author:      c.Author.Name,
		AuthorEmail: c.Author.Email,
		When:        c.Author.When,
		Summary:     summary,
	}
}
