package actions

import (
	"context"
	"fmt"
	"strings"

	"gitdash.dev/gitdash/internal/runtime"
	"gitdash.dev/gitdash/internal/tui"
	"gitdash.dev/gitdash/internal/tui/style"
)

// CommitOptions specifies options for the commit command
type CommitOptions struct {
	Message string
}

// CommitAction records the staged changes
func CommitAction(ctx context.Context, rc *runtime.Context, opts CommitOptions) error {
	repo, err := rc.Repository()
	if err != nil {
		return err
	}

	message := strings.TrimSpace(opts.Message)
	if message == "" {
		message, err = tui.PromptRequiredText("Commit message:")
		if err != nil {
			return fmt.Errorf("a commit message is required (-m): %w", err)
		}
	}

	sha, err := repo.Commit(ctx, message)
	if err != nil {
		return err
	}

	short := sha
	if len(short) > 8 {
		short = short[:8]
	}
	rc.Splog.Info("Committed %s %s", style.ColorHash(short), firstLine(message))
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
