package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "marker.json")

	assert.False(t, FileExists(f))
	require.NoError(t, os.WriteFile(f, []byte("{}"), 0o644))
	assert.True(t, FileExists(f))
	assert.False(t, FileExists(dir), "directories are not markers")
	assert.True(t, PathExists(dir))
}

func TestRemoveIfExists(t *testing.T) {
	f := filepath.Join(t.TempDir(), "gone")

	removed, err := RemoveIfExists(f)
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, os.WriteFile(f, nil, 0o644))
	removed, err = RemoveIfExists(f)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, PathExists(f))
}

func TestBaseNameFromURL(t *testing.T) {
	name, err := BaseNameFromURL("https://example.com/releases/download/minecraft/jei-1.20.1-forge-15.20.0.106.jar?x=1")
	require.NoError(t, err)
	assert.Equal(t, "jei-1.20.1-forge-15.20.0.106.jar", name)

	_, err = BaseNameFromURL("https://example.com/")
	assert.Error(t, err)
}

func TestWriteJSONFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "out.json")

	require.NoError(t, WriteJSONFile(f, map[string]int{"a": 1}, "  "))
	data, err := os.ReadFile(f)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "1.20.1.jar")
	require.NoError(t, os.WriteFile(src, []byte("client"), 0o644))

	dst := filepath.Join(dir, "versions", "forge", "forge.jar")
	require.NoError(t, CopyFile(src, dst))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "client", string(data))

	assert.Error(t, CopyFile(filepath.Join(dir, "missing.jar"), dst))
}
