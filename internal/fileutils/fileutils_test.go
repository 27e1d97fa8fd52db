package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(tempDir, "missing.csv")))
	assert.False(t, FileExists(tempDir), "a directory is not a file")
}

func TestDirectoryExists(t *testing.T) {
	tempDir := t.TempDir()
	assert.True(t, DirectoryExists(tempDir))
	assert.False(t, DirectoryExists(filepath.Join(tempDir, "missing")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDirectoryExists(path))
	assert.True(t, DirectoryExists(path))

	// Idempotent on an existing directory.
	require.NoError(t, EnsureDirectoryExists(path))
}

func TestListFilesWithExtensions(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"b.csv", "a.CSV", "c.xlsx", "d.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), nil, 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "sub.csv"), 0750))

	files, err := ListFilesWithExtensions(tempDir, ".csv", ".xlsx")
	require.NoError(t, err)

	want := []string{
		filepath.Join(tempDir, "a.CSV"),
		filepath.Join(tempDir, "b.csv"),
		filepath.Join(tempDir, "c.xlsx"),
	}
	assert.Equal(t, want, files, "matching is case-insensitive, sorted, and skips directories")
}
