package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "denolint.dev/pkg/denolint/internal/model"
)

func TestResolve(t *testing.T) {
	t.Run("absolute input is returned unchanged", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "does", "not", "exist")

		res := Resolve(abs, "/elsewhere")

		assert.Equal(t, m.Path(abs), res.Path)
		assert.Equal(t, ResolvedAbsolute, res.Kind)
		assert.True(t, res.Canonical())
		assert.NoError(t, res.Err)
	})

	t.Run("existing relative path is canonicalized", func(t *testing.T) {
		base := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(base, "src"), 0o755))

		want, err := filepath.EvalSymlinks(filepath.Join(base, "src"))
		require.NoError(t, err)

		res := Resolve("./src/../src", m.Path(base))

		assert.Equal(t, m.Path(want), res.Path)
		assert.Equal(t, ResolvedCanonical, res.Kind)
	})

	t.Run("symlinks are resolved", func(t *testing.T) {
		base := t.TempDir()
		target := filepath.Join(base, "target")
		require.NoError(t, os.MkdirAll(target, 0o755))
		require.NoError(t, os.Symlink(target, filepath.Join(base, "link")))

		want, err := filepath.EvalSymlinks(target)
		require.NoError(t, err)

		assert.Equal(t, m.Path(want), ResolvePath("link", m.Path(base)))
	})

	t.Run("nonexistent path falls back to the joined path", func(t *testing.T) {
		base := t.TempDir()

		res := Resolve("missing/dir", m.Path(base))

		assert.Equal(t, m.Path(filepath.Join(base, "missing", "dir")), res.Path)
		assert.Equal(t, ResolvedFallback, res.Kind)
		assert.False(t, res.Canonical())
		assert.Error(t, res.Err)
	})
}
