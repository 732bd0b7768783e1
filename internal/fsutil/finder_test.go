package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("$a$"), 0o600))
}

func TestFindPrograms(t *testing.T) {
	t.Parallel()

	// Arrange
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.flow"))
	touch(t, filepath.Join(root, "a.flow"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "nested", "c.flow"))
	touch(t, filepath.Join(root, ".git", "hidden.flow"))

	// Act
	files, err := FindPrograms(root)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.flow"),
		filepath.Join(root, "b.flow"),
		filepath.Join(root, "nested", "c.flow"),
	}, files)
}

func TestFindFilesByExtension_Errors(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(t.TempDir(), "")
	assert.Error(t, err)

	_, err = FindPrograms(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
