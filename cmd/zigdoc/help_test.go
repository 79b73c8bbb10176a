package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp_topics(t *testing.T) {
	t.Parallel()

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		var buff strings.Builder
		require.NoError(t, DefaultHelp.Write(&buff))
		assert.Contains(t, buff.String(), "USAGE: zigdoc")
		assert.Contains(t, buff.String(), "-debug")
	})

	t.Run("usage is first line", func(t *testing.T) {
		t.Parallel()

		var buff strings.Builder
		require.NoError(t, UsageHelp.Write(&buff))
		assert.Equal(t, 1, strings.Count(buff.String(), "\n"))
		assert.Contains(t, buff.String(), "USAGE: zigdoc")
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		var buff strings.Builder
		require.NoError(t, NoHelp.Write(&buff))
		assert.Empty(t, buff.String())
	})
}

func TestHelp_Set(t *testing.T) {
	t.Parallel()

	var h Help
	require.NoError(t, h.Set("true"))
	assert.Equal(t, DefaultHelp, h)

	require.NoError(t, h.Set("USAGE"))
	assert.Equal(t, UsageHelp, h)

	assert.Error(t, h.Set("bogus"))
}
