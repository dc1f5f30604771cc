package installer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"
	"testing"

	"forge-launcher/internal/config"
	"forge-launcher/internal/fetch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	dir  string
	name string
	args []string
}

type stubRunner struct {
	calls  []call
	err    error
	effect func()
}

func (r *stubRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.calls = append(r.calls, call{dir, name, args})
	if r.effect != nil {
		r.effect()
	}
	return r.err
}

func newTestConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.GameDir = t.TempDir()
	cfg.InstallerURL = serverURL + "/forge-installer.jar"
	cfg.ModURL = serverURL + "/jei.jar"
	return cfg
}

func countingServer(t *testing.T, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		hits.Add(1)
		rw.WriteHeader(status)
		_, _ = rw.Write([]byte("jar-bytes"))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func writeDescriptor(t *testing.T, cfg *config.Config) {
	t.Helper()
	require.NoError(t, os.MkdirAll(cfg.VersionDir(), 0o755))
	require.NoError(t, os.WriteFile(cfg.VersionDescriptorPath(), []byte(`{"id":"`+cfg.VersionID+`"}`), 0o644))
}

func TestEnsureInstalledRunsInstaller(t *testing.T) {
	srv, hits := countingServer(t, http.StatusOK)
	cfg := newTestConfig(t, srv.URL)

	// a stale extra file from another launcher must go before the installer runs
	require.NoError(t, os.MkdirAll(cfg.VersionDir(), 0o755))
	require.NoError(t, os.WriteFile(cfg.StaleExtraPath(), []byte("{}"), 0o644))

	runner := &stubRunner{effect: func() {
		assert.FileExists(t, cfg.InstallerPath())
		assert.FileExists(t, cfg.ProfilesPath())
		assert.NoFileExists(t, cfg.StaleExtraPath())
		writeDescriptor(t, cfg)
	}}
	inst := New(cfg, fetch.New(srv.Client()), runner)

	ran, err := inst.EnsureInstalled(context.Background())
	require.NoError(t, err)
	assert.True(t, ran)
	assert.EqualValues(t, 1, hits.Load())

	require.Len(t, runner.calls, 1)
	c := runner.calls[0]
	assert.Equal(t, cfg.GameDir, c.dir)
	assert.Equal(t, "java", c.name)
	assert.Equal(t, []string{"-jar", cfg.InstallerPath(), "--installClient", cfg.GameDir}, c.args)

	assert.NoFileExists(t, cfg.InstallerPath(), "installer is deleted after use")
	assert.True(t, inst.Installed())
}

func TestEnsureInstalledIsIdempotent(t *testing.T) {
	srv, hits := countingServer(t, http.StatusOK)
	cfg := newTestConfig(t, srv.URL)
	writeDescriptor(t, cfg)

	runner := &stubRunner{}
	inst := New(cfg, fetch.New(srv.Client()), runner)

	for range 2 {
		ran, err := inst.EnsureInstalled(context.Background())
		require.NoError(t, err)
		assert.False(t, ran)
	}
	assert.Zero(t, hits.Load())
	assert.Empty(t, runner.calls)
	assert.NoFileExists(t, cfg.ProfilesPath())
}

func TestEnsureInstalledFetchFailureStops(t *testing.T) {
	srv, _ := countingServer(t, http.StatusInternalServerError)
	cfg := newTestConfig(t, srv.URL)

	runner := &stubRunner{}
	_, err := New(cfg, fetch.New(srv.Client()), runner).EnsureInstalled(context.Background())

	var statusErr *fetch.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Empty(t, runner.calls, "installer must not run without its jar")
	assert.NoFileExists(t, cfg.InstallerPath())
	assert.NoFileExists(t, cfg.ProfilesPath())
}

func TestEnsureInstalledSubprocessFailure(t *testing.T) {
	srv, _ := countingServer(t, http.StatusOK)
	cfg := newTestConfig(t, srv.URL)

	runner := &stubRunner{err: errors.New("exit status 1")}
	_, err := New(cfg, fetch.New(srv.Client()), runner).EnsureInstalled(context.Background())

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Contains(t, exitErr.Error(), "exit status 1")
	assert.FileExists(t, cfg.InstallerPath(), "installer is kept when installation fails")
}

func TestEnsureInstalledKeepsExistingRegistry(t *testing.T) {
	srv, _ := countingServer(t, http.StatusOK)
	cfg := newTestConfig(t, srv.URL)
	require.NoError(t, os.WriteFile(cfg.ProfilesPath(), []byte(`{"profiles":{"x":{}}}`), 0o644))

	_, err := New(cfg, fetch.New(srv.Client()), &stubRunner{}).EnsureInstalled(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ProfilesPath())
	require.NoError(t, err)
	assert.Equal(t, `{"profiles":{"x":{}}}`, string(data))
}

func TestExecRunnerReportsExitCode(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()
	err = ExecRunner{}.Run(context.Background(), dir, sh, "-c", "echo boom; exit 3")

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Contains(t, exitErr.Output, "boom")

	require.NoError(t, ExecRunner{}.Run(context.Background(), dir, sh, "-c", "touch made"))
	assert.FileExists(t, filepath.Join(dir, "made"))
}
