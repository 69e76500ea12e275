package actions

import (
	"context"

	"gitdash.dev/gitdash/internal/runtime"
	"gitdash.dev/gitdash/internal/status"
)

// Stats are the dashboard counters
type Stats struct {
	Commits   int
	Branches  int
	Modified  int
	Staged    int
	Untracked int
}

// CollectStats gathers the dashboard counters
func CollectStats(ctx context.Context, rc *runtime.Context) (Stats, error) {
	commits, err := rc.Backend.CommitCount(ctx)
	if err != nil {
		return Stats{}, err
	}
	branches, err := rc.Backend.BranchList(ctx)
	if err != nil {
		return Stats{}, err
	}
	entries, err := status.Reconcile(ctx, rc.Backend)
	if err != nil {
		return Stats{}, err
	}
	summary := status.Summarize(entries)

	return Stats{
		Commits:   commits,
		Branches:  len(branches),
		Modified:  summary.Unstaged,
		Staged:    summary.Staged,
		Untracked: summary.Untracked,
	}, nil
}

// StatsAction prints the dashboard counters
func StatsAction(ctx context.Context, rc *runtime.Context) error {
	stats, err := CollectStats(ctx, rc)
	if err != nil {
		return err
	}

	rc.Splog.Info("Commits:   %d", stats.Commits)
	rc.Splog.Info("Branches:  %d", stats.Branches)
	rc.Splog.Info("Modified:  %d", stats.Modified)
	rc.Splog.Info("Staged:    %d", stats.Staged)
	rc.Splog.Info("Untracked: %d", stats.Untracked)
	return nil
}
