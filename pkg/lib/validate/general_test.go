//go:build unit || !integration

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotNil(t *testing.T) {
	assert.Error(t, NotNil(nil, "missing"))
	assert.NoError(t, NotNil(42, "missing"))
	assert.NoError(t, NotNil(new(int), "missing"))

	// interfaces wrapping typed nils are still nil for our purposes
	var p *int
	assert.Error(t, NotNil(p, "missing"))
	var m map[string]string
	assert.Error(t, NotNil(m, "missing"))

	err := IsNotNil(nil, "no %s given", "registry")
	assert.EqualError(t, err, "no registry given")
}

func TestBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t\n"))
	assert.False(t, IsBlank("feed-1"))
	assert.True(t, IsNotBlank(" x "))
}

func TestContainsNull(t *testing.T) {
	assert.True(t, ContainsNull("bad\x00id"))
	assert.False(t, ContainsNull("good-id"))
}

func TestNoSpaces(t *testing.T) {
	assert.NoError(t, NoSpaces("datafeed_1", "spaces"))
	assert.Error(t, NoSpaces("datafeed 1", "spaces"))
	assert.Error(t, NoSpaces("datafeed\t1", "spaces"))
}
