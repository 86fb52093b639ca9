package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/upload"
)

func TestDiskStore(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	ds, err := NewDiskStore(root)
	require.NoError(t, err)

	stored, err := ds.Save(strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Len(t, stored, 32)
	assert.NotContains(t, stored, "-")

	t.Run("resolve generic file", func(t *testing.T) {
		fp, err := ds.Resolve(stored)
		require.NoError(t, err)
		data, err := os.ReadFile(fp)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("move to category and list", func(t *testing.T) {
		other, err := ds.Save(strings.NewReader("b"))
		require.NoError(t, err)
		require.NoError(t, ds.MoveToCategory(other, upload.CategoryNotes, "b.pdf"))
		third, err := ds.Save(strings.NewReader("a"))
		require.NoError(t, err)
		require.NoError(t, ds.MoveToCategory(third, upload.CategoryNotes, "a.pdf"))

		files, err := ds.List(upload.CategoryNotes)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.pdf", "b.pdf"}, files)

		files, err = ds.List(upload.CategoryResults)
		require.NoError(t, err)
		assert.Empty(t, files)

		_, err = ds.Resolve("notes/a.pdf")
		assert.NoError(t, err)
	})

	t.Run("resolve never leaves the root", func(t *testing.T) {
		secret := filepath.Join(filepath.Dir(root), "secret.txt")
		require.NoError(t, os.WriteFile(secret, []byte("s3cr3t"), 0o644))

		for _, rel := range []string{"../secret.txt", "notes/../../secret.txt", "/../secret.txt"} {
			_, err := ds.Resolve(rel)
			assert.Equal(t, core.ErrNotFound, err, rel)
		}
	})

	t.Run("directories are not files", func(t *testing.T) {
		_, err := ds.Resolve("notes")
		assert.Equal(t, core.ErrNotFound, err)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, ds.Remove(stored))
		_, err := ds.Resolve(stored)
		assert.Equal(t, core.ErrNotFound, err)
		assert.NoError(t, ds.Remove(stored))
	})
}
