package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitdash.dev/gitdash/internal/actions"
	gitdasherrors "gitdash.dev/gitdash/internal/errors"
	"gitdash.dev/gitdash/internal/runtime"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		hint string
	}{
		{"auth", gitdasherrors.NewTransportError("push", "origin", "main", gitdasherrors.TransportAuthenticationFailed, "", nil), "Authentication failed! This usually means:"},
		{"permission", gitdasherrors.NewTransportError("push", "origin", "main", gitdasherrors.TransportPermissionDenied, "", nil), "Permission denied."},
		{"diverged", gitdasherrors.NewTransportError("push", "origin", "main", gitdasherrors.TransportDivergedHistory, "", nil), "Try pulling first."},
		{"conflict", gitdasherrors.NewTransportError("pull", "origin", "main", gitdasherrors.TransportMergeConflict, "", nil), "Merge conflict detected!"},
		{"network", gitdasherrors.NewTransportError("pull", "origin", "main", gitdasherrors.TransportNetworkUnreachable, "", nil), "Could not reach the remote."},
		{"other transport", gitdasherrors.NewTransportError("pull", "origin", "main", gitdasherrors.TransportOther, "", nil), "The remote operation failed."},
		{"no remote", gitdasherrors.NewRemoteNotConfiguredError("origin"), "No remote 'origin' configured."},
		{"no commits", actions.ErrNoCommits, "No commits to push."},
		{"not authenticated", fmt.Errorf("wrapped: %w", gitdasherrors.ErrNotAuthenticated), "No GitHub token configured."},
		{"demo", runtime.ErrDemoReadOnly, "Unset GITDASH_DEMO"},
		{"canceled", context.Canceled, "Canceled."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := FormatError(tt.err)
			require.True(t, strings.HasPrefix(msg, tt.hint), msg)
			require.Contains(t, msg, "Error: "+tt.err.Error())
		})
	}

	t.Run("unknown error has no hint", func(t *testing.T) {
		require.Equal(t, "Error: boom", FormatError(errors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		require.Empty(t, FormatError(nil))
	})

	t.Run("restore failure warns", func(t *testing.T) {
		err := errors.Join(
			gitdasherrors.NewTransportError("push", "origin", "main", gitdasherrors.TransportOther, "", nil),
			gitdasherrors.NewRestoreError("origin", errors.New("disk full")),
		)

		msg := FormatError(err)
		require.Contains(t, msg, "could not be restored")
		require.Contains(t, msg, "git remote set-url origin <url>")
	})
}
