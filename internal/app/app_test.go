package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"forge-launcher/internal/config"
	"forge-launcher/internal/form"
	"forge-launcher/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.GameDir = t.TempDir()
	return cfg
}

func TestNewPicksImplementationsFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.RememberUsername = false

	a := New(cfg, Options{})
	assert.Same(t, cfg, a.Config)
	assert.IsType(t, notify.Multi{}, a.Notifier)
	assert.IsType(t, form.Forget{}, a.Memory)
	assert.NotNil(t, a.Workflow)
	assert.Equal(t, form.Idle, a.Form().State())

	cfg.RememberUsername = true
	a = New(cfg, Options{Notifier: notify.Log{}})
	assert.IsType(t, notify.Log{}, a.Notifier)
	assert.IsType(t, form.Keyring{}, a.Memory)
}

func TestWorkflowRejectsEmptyUsername(t *testing.T) {
	rec := &notify.Recorder{}
	a := New(testConfig(t), Options{Notifier: rec, Memory: form.Forget{}})

	report := a.Workflow.Run(context.Background(), "")
	assert.Error(t, report.Err())
	assert.Len(t, rec.Dialogs(), 1)
}

func TestClean(t *testing.T) {
	cfg := testConfig(t)
	modPath, err := cfg.ModPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(modPath), 0o755))
	require.NoError(t, os.WriteFile(modPath, []byte("jar"), 0o644))
	require.NoError(t, os.WriteFile(cfg.ProfilesPath(), []byte("{}"), 0o644))

	removed, err := Clean(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{modPath}, removed)
	assert.NoFileExists(t, modPath)
	assert.FileExists(t, cfg.ProfilesPath())

	removed, err = Clean(cfg)
	require.NoError(t, err)
	assert.Empty(t, removed)
}
