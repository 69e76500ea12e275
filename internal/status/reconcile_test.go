package status

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gitdash.dev/gitdash/internal/demo"
	gitdasherrors "gitdash.dev/gitdash/internal/errors"
	"gitdash.dev/gitdash/internal/git"
	"gitdash.dev/gitdash/testhelpers"
)

func TestReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("orders categories", func(t *testing.T) {
		backend := demo.NewBackend()
		backend.HeadValid = true
		backend.Untracked = []string{"u.txt"}
		backend.Unstaged = []git.Change{{Path: "m.txt", Kind: git.ChangeModified}}
		backend.Staged = []git.Change{{Path: "s.txt", Kind: git.ChangeAdded}}

		entries, err := Reconcile(ctx, backend)
		require.NoError(t, err)
		require.Equal(t, []PathStatus{
			{Path: "u.txt", State: Untracked, Category: CategoryUntracked, RawKind: "?"},
			{Path: "m.txt", State: ModifiedUnstaged, Category: CategoryUnstaged, RawKind: "M"},
			{Path: "s.txt", State: StagedAdded, Category: CategoryStaged, RawKind: "A"},
		}, entries)
	})

	t.Run("same path in both diffs", func(t *testing.T) {
		backend := demo.NewBackend()
		backend.HeadValid = true
		backend.Unstaged = []git.Change{{Path: "a.go", Kind: git.ChangeModified}}
		backend.Staged = []git.Change{{Path: "a.go", Kind: git.ChangeModified}}

		entries, err := Reconcile(ctx, backend)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, CategoryUnstaged, entries[0].Category)
		require.Equal(t, StagedModified, entries[1].State)
	})

	t.Run("unborn HEAD yields only untracked and skips diffs", func(t *testing.T) {
		backend := demo.NewBackend()
		backend.Untracked = []string{"new.txt"}
		backend.Unstaged = []git.Change{{Path: "ignored.txt", Kind: git.ChangeModified}}

		entries, err := Reconcile(ctx, backend)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, Untracked, entries[0].State)
		require.Equal(t, 0, backend.DiffCalls())
	})

	t.Run("staged kinds", func(t *testing.T) {
		backend := demo.NewBackend()
		backend.HeadValid = true
		backend.Staged = []git.Change{
			{Path: "a", Kind: git.ChangeAdded},
			{Path: "c", Kind: git.ChangeCopied},
			{Path: "m", Kind: git.ChangeModified},
			{Path: "t", Kind: git.ChangeTypeChanged},
			{Path: "d", Kind: git.ChangeDeleted},
			{Path: "r", Kind: git.ChangeRenamed, RenamedFrom: "old"},
			{Path: "x", Kind: "X"},
		}

		entries, err := Reconcile(ctx, backend)
		require.NoError(t, err)

		states := make([]State, len(entries))
		for i, e := range entries {
			states[i] = e.State
		}
		require.Equal(t, []State{StagedAdded, StagedAdded, StagedModified, StagedModified, StagedDeleted, Renamed, Unknown}, states)
		require.Equal(t, "old", entries[5].RenamedFrom)
		require.Equal(t, "X", entries[6].RawKind)
	})

	t.Run("unstaged kinds", func(t *testing.T) {
		backend := demo.NewBackend()
		backend.HeadValid = true
		backend.Unstaged = []git.Change{
			{Path: "d", Kind: git.ChangeDeleted},
			{Path: "u", Kind: git.ChangeUnmerged},
			{Path: "r", Kind: git.ChangeRenamed, RenamedFrom: "q"},
			{Path: "z", Kind: "Z"},
		}

		entries, err := Reconcile(ctx, backend)
		require.NoError(t, err)
		require.Equal(t, ModifiedUnstaged, entries[0].State)
		require.Equal(t, ModifiedUnstaged, entries[1].State)
		require.Equal(t, Renamed, entries[2].State)
		require.Equal(t, "q", entries[2].RenamedFrom)
		require.Equal(t, Unknown, entries[3].State)
	})

	t.Run("duplicates collapse within a category", func(t *testing.T) {
		backend := demo.NewBackend()
		backend.HeadValid = true
		backend.Untracked = []string{"a", "a"}
		backend.Staged = []git.Change{{Path: "b", Kind: git.ChangeAdded}, {Path: "b", Kind: git.ChangeModified}}

		entries, err := Reconcile(ctx, backend)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.Equal(t, StagedAdded, entries[1].State)
	})

	t.Run("read failure is unavailable", func(t *testing.T) {
		backend := demo.NewBackend()
		backend.HeadValid = true
		backend.ReadErr = errors.New("index locked")

		_, err := Reconcile(ctx, backend)
		require.ErrorIs(t, err, gitdasherrors.ErrRepositoryUnavailable)
		require.Contains(t, err.Error(), "index locked")
	})

	t.Run("cancellation passes through", func(t *testing.T) {
		backend := demo.NewBackend()
		backend.ReadErr = context.Canceled

		_, err := Reconcile(ctx, backend)
		require.ErrorIs(t, err, context.Canceled)
		require.NotErrorIs(t, err, gitdasherrors.ErrRepositoryUnavailable)
	})

	t.Run("clean repository", func(t *testing.T) {
		backend := demo.NewBackend()
		backend.HeadValid = true

		entries, err := Reconcile(ctx, backend)
		require.NoError(t, err)
		require.Empty(t, entries)
		require.True(t, Summarize(entries).Clean())
	})
}

func TestReconcileRealRepository(t *testing.T) {
	ctx := context.Background()

	open := func(t *testing.T, scene *testhelpers.Scene) *git.Repository {
		t.Helper()
		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)
		return repo
	}

	t.Run("file lifecycle", func(t *testing.T) {
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		repo := open(t, scene)

		require.NoError(t, scene.Repo.WriteFile("f.txt", "one"))
		entries, err := Reconcile(ctx, repo)
		require.NoError(t, err)
		require.Equal(t, []PathStatus{{Path: "f.txt", State: Untracked, Category: CategoryUntracked, RawKind: "?"}}, entries)

		require.NoError(t, scene.Repo.RunGitCommand("add", "f.txt"))
		entries, err = Reconcile(ctx, repo)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, StagedAdded, entries[0].State)

		require.NoError(t, scene.Repo.CommitAll("add f"))
		require.NoError(t, scene.Repo.WriteFile("f.txt", "two"))
		entries, err = Reconcile(ctx, repo)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, ModifiedUnstaged, entries[0].State)

		require.NoError(t, scene.Repo.RunGitCommand("add", "f.txt"))
		require.NoError(t, scene.Repo.WriteFile("f.txt", "three"))
		entries, err = Reconcile(ctx, repo)
		require.NoError(t, err)
		require.Equal(t, []PathStatus{
			{Path: "f.txt", State: ModifiedUnstaged, Category: CategoryUnstaged, RawKind: "M"},
			{Path: "f.txt", State: StagedModified, Category: CategoryStaged, RawKind: "M"},
		}, entries)
	})

	t.Run("identical content has no entry", func(t *testing.T) {
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		repo := open(t, scene)

		require.NoError(t, scene.Repo.WriteFile("1_test.txt", "1"))
		entries, err := Reconcile(ctx, repo)
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("deleted and staged delete", func(t *testing.T) {
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		repo := open(t, scene)
		require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))

		require.NoError(t, scene.Repo.RemoveFile("1_test.txt"))
		require.NoError(t, scene.Repo.RunGitCommand("rm", "-q", "--cached", "2_test.txt"))

		entries, err := Reconcile(ctx, repo)
		require.NoError(t, err)

		summary := Summarize(entries)
		require.Equal(t, Summary{Untracked: 1, Unstaged: 1, Staged: 1}, summary)
		staged := Filter(entries, CategoryStaged)
		require.Equal(t, "2_test.txt", staged[0].Path)
		require.Equal(t, StagedDeleted, staged[0].State)
	})

	t.Run("unborn repository", func(t *testing.T) {
		scene := testhelpers.NewSceneParallel(t, nil)
		repo := open(t, scene)
		require.NoError(t, scene.Repo.WriteFile("a.txt", "a"))
		require.NoError(t, scene.Repo.CreateChange("b", "b", false))

		entries, err := Reconcile(ctx, repo)
		require.NoError(t, err)
		require.Equal(t, []PathStatus{{Path: "a.txt", State: Untracked, Category: CategoryUntracked, RawKind: "?"}}, entries)
	})

	t.Run("staged rename", func(t *testing.T) {
		scene := testhelpers.NewSceneParallel(t, nil)
		repo := open(t, scene)
		require.NoError(t, scene.Repo.WriteFile("old.txt", "line one\nline two\nline three\nline four\n"))
		require.NoError(t, scene.Repo.CommitAll("add old"))
		require.NoError(t, scene.Repo.RunGitCommand("mv", "old.txt", "new.txt"))

		entries, err := Reconcile(ctx, repo)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, Renamed, entries[0].State)
		require.Equal(t, "new.txt", entries[0].Path)
		require.Equal(t, "old.txt", entries[0].RenamedFrom)
	})

	t.Run("does not mutate the repository", func(t *testing.T) {
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		repo := open(t, scene)
		require.NoError(t, scene.Repo.WriteFile("x.txt", "x"))
		require.NoError(t, scene.Repo.CreateChange("changed", "1", false))

		before, err := scene.Repo.RunGitCommandAndGetOutput("status", "--porcelain")
		require.NoError(t, err)
		_, err = Reconcile(ctx, repo)
		require.NoError(t, err)
		after, err := scene.Repo.RunGitCommandAndGetOutput("status", "--porcelain")
		require.NoError(t, err)
		require.Equal(t, before, after)
	})
}

func TestStateString(t *testing.T) {
	require.Equal(t, "untracked", Untracked.String())
	require.Equal(t, "staged", StagedModified.String())
	require.Equal(t, "unknown", Unknown.String())
}
