package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir(t *testing.T) {
	t.Run("creates missing ancestors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "c.json")
		require.NoError(t, EnsureParentDir(path))

		info, err := os.Stat(filepath.Dir(path))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("existing directory is fine", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, EnsureParentDir(filepath.Join(dir, "file.json")))
	})

	t.Run("bare filename needs no directory", func(t *testing.T) {
		require.NoError(t, EnsureParentDir("file.json"))
	})
}
