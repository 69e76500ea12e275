package git

import (
	"strings"

	gitdasherrors "gitdash.dev/gitdash/internal/errors"
)

// transportPatterns maps lower-cased git output fragments to a failure kind.
// Order matters: the first matching group wins.
var transportPatterns = []struct {
	kind     gitdasherrors.TransportKind
	patterns []string
}{
	{
		kind: gitdasherrors.TransportAuthenticationFailed,
		patterns: []string{
			"authentication failed",
			"could not read username",
			"could not read password",
			"invalid username or password",
			"invalid credentials",
		},
	},
	{
		kind: gitdasherrors.TransportPermissionDenied,
		patterns: []string{
			"permission denied",
			"permission to",
			"the requested url returned error: 403",
		},
	},
	{
		kind: gitdasherrors.TransportDivergedHistory,
		patterns: []string{
			"remote contains work",
			"non-fast-forward",
			"fetch first",
			"[rejected]",
			"divergent branches",
			"not possible to fast-forward",
		},
	},
	{
		kind: gitdasherrors.TransportMergeConflict,
		patterns: []string{
			"merge conflict",
			"automatic merge failed",
			"conflict (",
		},
	},
	{
		kind: gitdasherrors.TransportNetworkUnreachable,
		patterns: []string{
			"could not resolve host",
			"unable to access",
			"connection refused",
			"connection timed out",
			"operation timed out",
			"network is unreachable",
			"could not connect",
		},
	},
}

// ClassifyTransportOutput maps push or pull output to a TransportKind
func ClassifyTransportOutput(output string) gitdasherrors.TransportKind {
	lower := strings.ToLower(output)
	for _, group := range transportPatterns {
		for _, p := range group.patterns {
			if strings.Contains(lower, p) {
				return group.kind
			}
		}
	}
	return gitdasherrors.TransportOther
}
