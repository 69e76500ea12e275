package actions

import (
	"context"
	"errors"
	"fmt"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
	"gitdash.dev/gitdash/internal/runtime"
	"gitdash.dev/gitdash/internal/status"
	"gitdash.dev/gitdash/internal/tui/style"
)

// StatusOptions specifies options for the status command
type StatusOptions struct {
	Short bool
}

// StatusAction prints the working-tree status grouped by category
func StatusAction(ctx context.Context, rc *runtime.Context, opts StatusOptions) error {
	entries, err := status.Reconcile(ctx, rc.Backend)
	if err != nil {
		return err
	}

	if opts.Short {
		for _, e := range entries {
			rc.Splog.Info("%s %s", ShortCode(e), displayPath(e))
		}
		return nil
	}

	branch, err := rc.Backend.CurrentBranch(ctx)
	switch {
	case err == nil:
		rc.Splog.Info("On branch %s", style.ColorBranchName(branch, false))
	case errors.Is(err, gitdasherrors.ErrNoActiveBranch):
		valid, headErr := rc.Backend.IsHEADValid(ctx)
		if headErr != nil {
			return headErr
		}
		if valid {
			rc.Splog.Info("HEAD detached")
		} else {
			rc.Splog.Info("No commits yet")
		}
	default:
		return err
	}

	if status.Summarize(entries).Clean() {
		rc.Splog.Info("Nothing to commit, working tree clean")
		return nil
	}

	printSection(rc, "Staged changes:", status.Filter(entries, status.CategoryStaged))
	printSection(rc, "Unstaged changes:", status.Filter(entries, status.CategoryUnstaged))
	printSection(rc, "Untracked files:", status.Filter(entries, status.CategoryUntracked))
	return nil
}

func printSection(rc *runtime.Context, title string, entries []status.PathStatus) {
	if len(entries) == 0 {
		return
	}
	rc.Splog.Newline()
	rc.Splog.Info("%s", style.ColorHeader(title))
	for _, e := range entries {
		if e.State == status.Untracked {
			rc.Splog.Info("  %s", style.ColorUntracked(e.Path))
			continue
		}
		line := fmt.Sprintf("%-12s%s", Label(e)+":", displayPath(e))
		rc.Splog.Info("  %s", colorEntry(e, line))
	}
}

// Label returns the human readable description of an entry
func Label(e status.PathStatus) string {
	switch e.State {
	case status.Untracked:
		return "untracked"
	case status.ModifiedUnstaged, status.StagedModified:
		return "modified"
	case status.StagedAdded:
		return "new file"
	case status.StagedDeleted:
		return "deleted"
	case status.Renamed:
		return "renamed"
	default:
		return "unknown " + e.RawKind
	}
}

// ShortCode returns a two column code in the spirit of git status --short
func ShortCode(e status.PathStatus) string {
	switch e.State {
	case status.Untracked:
		return "??"
	case status.ModifiedUnstaged:
		return " M"
	case status.StagedAdded:
		return "A "
	case status.StagedModified:
		return "M "
	case status.StagedDeleted:
		return "D "
	case status.Renamed:
		if e.Category == status.CategoryUnstaged {
			return " R"
		}
		return "R "
	default:
		kind := e.RawKind
		if kind == "" {
			kind = "X"
		}
		if e.Category == status.CategoryUnstaged {
			return " " + kind[:1]
		}
		return kind[:1] + " "
	}
}

func displayPath(e status.PathStatus) string {
	if e.State == status.Renamed && e.RenamedFrom != "" {
		return e.RenamedFrom + " -> " + e.Path
	}
	return e.Path
}

func colorEntry(e status.PathStatus, text string) string {
	switch {
	case e.State == status.Renamed:
		return style.ColorRenamed(text)
	case e.Category == status.CategoryStaged:
		return style.ColorStaged(text)
	default:
		return style.ColorUnstaged(text)
	}
}
