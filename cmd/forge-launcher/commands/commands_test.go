package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"forge-launcher/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config and home directories at temp dirs so the
// developer's own config.yml never leaks into a run.
func isolate(t *testing.T) string {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", configHome)
	return configHome
}

func execute(t *testing.T, args ...string) (*rootOptions, error) {
	t.Helper()
	isolate(t)
	return run(args...)
}

func run(args ...string) (*rootOptions, error) {
	o := &rootOptions{}
	root := newRootCmd(o)
	root.SetArgs(args)
	return o, root.ExecuteContext(context.Background())
}

func TestConfigPrecedence(t *testing.T) {
	gameDir := t.TempDir()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
game_dir: `+gameDir+`
java_path: /usr/lib/jvm/17/bin/java
mod_failure: continue
width: 1280
`), 0o644))

	o, err := execute(t, "versions", "--config", path, "--width", "1920", "--log-level", "quiet")
	require.NoError(t, err)
	require.NotNil(t, o.cfg)

	assert.Equal(t, gameDir, o.cfg.GameDir)
	assert.Equal(t, "/usr/lib/jvm/17/bin/java", o.cfg.JavaPath, "file overrides default")
	assert.Equal(t, config.ModFailureContinue, o.cfg.ModFailure)
	assert.Equal(t, 1920, o.cfg.Width, "flag overrides file")
	assert.Equal(t, config.DefaultHeight, o.cfg.Height)
	assert.Equal(t, config.DefaultVersionID, o.cfg.VersionID, "unset flag keeps default")
}

func TestInvalidFlagsAreRejected(t *testing.T) {
	_, err := execute(t, "versions", "--game-dir", t.TempDir(), "--mod-failure", "maybe")
	assert.ErrorContains(t, err, "mod_failure")

	_, err = execute(t, "versions", "--game-dir", t.TempDir(), "--config", filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestUnknownConfigKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("gamedir: /tmp\n"), 0o644))

	_, err := execute(t, "versions", "--config", path)
	assert.Error(t, err)
}

func TestCleanCommand(t *testing.T) {
	gameDir := t.TempDir()
	installer := filepath.Join(gameDir, config.InstallerFileName)
	require.NoError(t, os.WriteFile(installer, []byte("jar"), 0o644))

	_, err := execute(t, "clean", "--game-dir", gameDir)
	require.NoError(t, err)
	assert.NoFileExists(t, installer)
}

func TestPlayWithUsernameSurfacesFailure(t *testing.T) {
	gameDir := t.TempDir()
	_, err := execute(t, "play", "--game-dir", gameDir, "--username", "Steve",
		"--installer-url", "http://127.0.0.1:1/forge-installer.jar", "--remember-username=false")

	var shown *shownError
	assert.ErrorAs(t, err, &shown)
}

func TestDefaultConfigPathIsRead(t *testing.T) {
	configHome := isolate(t)
	path, err := config.DefaultConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("width: 1600\n"), 0o644))
	require.True(t, strings.HasPrefix(path, configHome))

	o, err := run("versions", "--game-dir", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 1600, o.cfg.Width)
}
