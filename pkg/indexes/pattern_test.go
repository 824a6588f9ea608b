//go:build unit || !integration

package indexes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	assert.False(t, IsRemote("foo"))
	assert.False(t, IsRemote("fo*"))
	assert.True(t, IsRemote("other:foo"))
	assert.True(t, IsRemote("other:f*"))
	// a leading separator still marks the pattern remote
	assert.True(t, IsRemote(":foo"))
}

func TestSplitRemoteName(t *testing.T) {
	cluster, expr := SplitRemoteName("other:logs-*")
	assert.Equal(t, "other", cluster)
	assert.Equal(t, "logs-*", expr)

	cluster, expr = SplitRemoteName("logs-*")
	assert.Empty(t, cluster)
	assert.Equal(t, "logs-*", expr)
}

func TestMatch(t *testing.T) {
	ok, err := Match("fo*", "foo")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Match("fo*", "bar")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Match("foo", "foo")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Match("[a-", "foo")
	assert.Error(t, err)
}
