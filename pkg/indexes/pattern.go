package indexes

import (
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// remoteClusterSeparator splits a remote cluster name from the index
// expression that cluster should resolve, as in `cluster:logs-*`.
const remoteClusterSeparator = ":"

// IsRemote returns true when the pattern carries a remote cluster prefix.
// Remote patterns are opaque here: they are never expanded against the local
// catalog and their validity is the remote cluster's concern.
func IsRemote(pattern string) bool {
	return strings.Contains(pattern, remoteClusterSeparator)
}

// SplitRemoteName splits an index pattern into the remote cluster name and
// the index expression that cluster resolves. The cluster name is empty for
// local patterns.
func SplitRemoteName(pattern string) (cluster, expr string) {
	i := strings.Index(pattern, remoteClusterSeparator)
	if i < 0 {
		return "", pattern
	}
	return pattern[:i], pattern[i+1:]
}

// Match reports whether the concrete index name matches the pattern. Patterns
// use glob semantics, so `fo*` matches `foo`. Returns doublestar.ErrBadPattern
// for malformed patterns.
func Match(pattern, name string) (bool, error) {
	return doublestar.Match(pattern, name)
}
