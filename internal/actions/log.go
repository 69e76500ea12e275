package actions

import (
	"context"

	"gitdash.dev/gitdash/internal/runtime"
	"gitdash.dev/gitdash/internal/tui/style"
)

// LogOptions specifies options for the log command
type LogOptions struct {
	// Limit caps the number of commits; zero uses the configured limit
	Limit int
}

// LogAction prints the commit history of HEAD, newest first
func LogAction(ctx context.Context, rc *runtime.Context, opts LogOptions) error {
	limit := opts.Limit
	if limit <= 0 {
		limit = rc.Config.LogLimit()
	}

	commits, err := rc.Backend.Commits(ctx, limit)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		rc.Splog.Info("No commits yet")
		return nil
	}

	for _, c := range commits {
		date := ""
		if !c.When.IsZero() {
			date = c.When.Format("2006-01-02 15:04")
		}
		rc.Splog.Info("%s %s %s %s", style.ColorHash(c.ShortHash), style.ColorDim(date), c.Summary, style.ColorDim("<"+c.Author+">"))
	}
	return nil
}
