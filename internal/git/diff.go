package git

import (
	"context"
	"fmt"
	"strings"
)

// ListUntracked returns untracked, non-ignored paths in the order git scans them
func (r *Repository) ListUntracked(ctx context.Context) ([]string, error) {
	output, err := r.runner.RunRaw(ctx, "ls-files", "--others", "--exclude-standard", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to list untracked files: %w", err)
	}
	return splitNul(output), nil
}

// DiffWorktreeVsIndex returns the changes between the index and the worktree
func (r *Repository) DiffWorktreeVsIndex(ctx context.Context) ([]Change, error) {
	output, err := r.runner.RunRaw(ctx, "diff", "--name-status", "-z", "-M", "--no-color")
	if err != nil {
		return nil, fmt.Errorf("failed to diff worktree against index: %w", err)
	}
	return ParseNameStatus(output)
}

// DiffIndexVsHEAD returns the changes between HEAD and the index
func (r *Repository) DiffIndexVsHEAD(ctx context.Context) ([]Change, error) {
	output, err := r.runner.RunRaw(ctx, "diff", "--cached", "--name-status", "-z", "-M", "--no-color", "HEAD")
	if err != nil {
		return nil, fmt.Errorf("failed to diff index against HEAD: %w", err)
	}
	return ParseNameStatus(output)
}

// ParseNameStatus parses NUL-separated `git diff --name-status -z` output.
// Renames and copies carry a similarity score (R087) and two paths, source first.
func ParseNameStatus(output string) ([]Change, error) {
	fields := splitNul(output)
	changes := make([]Change, 0, len(fields)/2)

	for i := 0; i < len(fields); i++ {
		status := fields[i]
		if status == "" {
			continue
		}
		kind := ChangeKind(status[:1])

		switch kind {
		case ChangeRenamed, ChangeCopied:
			if i+2 >= len(fields) {
				return nil, fmt.Errorf("malformed name-status output: %s entry without two paths", status)
			}
			changes = append(changes, Change{
				Path:        fields[i+2],
				Kind:        kind,
				RenamedFrom: fields[i+1],
			})
			i += 2
		default:
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("malformed name-status output: %s entry without a path", status)
			}
			changes = append(changes, Change{
				Path: fields[i+1],
				Kind: kind,
			})
			i++
		}
	}

	return changes, nil
}

func splitNul(output string) []string {
	parts := strings.Split(output, "\x00")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
