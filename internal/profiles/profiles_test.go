package profiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCreatesDefaultSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher_profiles.json")

	created, err := Ensure(path)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"profiles": {},
		"selectedProfile": "",
		"clientToken": "00000000-0000-0000-0000-000000000000",
		"authenticationDatabase": {}
	}`, string(data))
	assert.Contains(t, string(data), "\n    \"profiles\": {}", "four-space indent")

	reg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), reg)
}

func TestEnsureKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher_profiles.json")
	existing := `{"profiles":{"forge":{"name":"forge"}}}`
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	created, err := Ensure(path)
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, existing, string(data))
}

func TestEnsureMissingDir(t *testing.T) {
	_, err := Ensure(filepath.Join(t.TempDir(), "missing", "launcher_profiles.json"))
	assert.Error(t, err)
}
