package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNameStatus(t *testing.T) {
	t.Run("empty output", func(t *testing.T) {
		changes, err := ParseNameStatus("")
		require.NoError(t, err)
		require.Empty(t, changes)
	})

	t.Run("simple entries", func(t *testing.T) {
		changes, err := ParseNameStatus("M\x00a.txt\x00A\x00dir/b.txt\x00D\x00c.txt\x00")
		require.NoError(t, err)
		require.Equal(t, []Change{
			{Path: "a.txt", Kind: ChangeModified},
			{Path: "dir/b.txt", Kind: ChangeAdded},
			{Path: "c.txt", Kind: ChangeDeleted},
		}, changes)
	})

	t.Run("rename carries source", func(t *testing.T) {
		changes, err := ParseNameStatus("R087\x00old.txt\x00new.txt\x00M\x00x.txt\x00")
		require.NoError(t, err)
		require.Equal(t, []Change{
			{Path: "new.txt", Kind: ChangeRenamed, RenamedFrom: "old.txt"},
			{Path: "x.txt", Kind: ChangeModified},
		}, changes)
	})

	t.Run("paths with spaces and tabs", func(t *testing.T) {
		changes, err := ParseNameStatus("M\x00my file\t.txt\x00")
		require.NoError(t, err)
		require.Equal(t, "my file\t.txt", changes[0].Path)
	})

	t.Run("unknown kind passes through", func(t *testing.T) {
		changes, err := ParseNameStatus("X\x00weird\x00")
		require.NoError(t, err)
		require.Equal(t, ChangeKind("X"), changes[0].Kind)
	})

	t.Run("truncated rename", func(t *testing.T) {
		_, err := ParseNameStatus("R100\x00only-one\x00")
		require.Error(t, err)
	})

	t.Run("status without path", func(t *testing.T) {
		_, err := ParseNameStatus("M\x00")
		require.Error(t, err)
	})
}
