// /internal/installer/installer.go
package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"forge-launcher/internal/config"
	"forge-launcher/internal/log"
	"forge-launcher/internal/profiles"
	"forge-launcher/internal/util"
)

// Fetcher downloads url to dest.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// Runner executes a program in dir and waits for it.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExitError reports a non-zero exit from the Forge installer.
type ExitError struct {
	Command string
	Err     error
	Output  string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("forge installer failed (%s): %v", e.Command, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + tail(out, 20)
	}
	return msg
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExecRunner runs programs with os/exec, teeing output to Stdout.
type ExecRunner struct {
	Stdout io.Writer
}

func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var buf bytes.Buffer
	out := io.Writer(&buf)
	if r.Stdout != nil {
		out = io.MultiWriter(r.Stdout, &buf)
	}
	cmd.Stdout = out
	cmd.Stderr = out

	log.Log.Info("Executing: %s", cmd.String())
	if err := cmd.Run(); err != nil {
		return &ExitError{Command: cmd.String(), Err: err, Output: buf.String()}
	}
	return nil
}

// Installer installs the configured Forge version.
type Installer struct {
	cfg     *config.Config
	fetcher Fetcher
	runner  Runner
}

func New(cfg *config.Config, fetcher Fetcher, runner Runner) *Installer {
	return &Installer{cfg: cfg, fetcher: fetcher, runner: runner}
}

// Installed reports whether the version descriptor is on disk.
func (i *Installer) Installed() bool {
	return util.FileExists(i.cfg.VersionDescriptorPath())
}

// EnsureInstalled installs Forge unless the version descriptor already
// exists. It reports whether an installation ran. Any error means the
// version is not usable and nothing downstream should proceed.
func (i *Installer) EnsureInstalled(ctx context.Context) (bool, error) {
	if i.Installed() {
		log.Log.Info("Version %s is already installed.", i.cfg.VersionID)
		return false, nil
	}
	log.Log.Info("Installing Forge version %s...", i.cfg.VersionID)

	if err := util.EnsureDir(i.cfg.GameDir); err != nil {
		return false, fmt.Errorf("create game directory: %w", err)
	}

	installerPath := i.cfg.InstallerPath()
	if err := i.fetcher.Fetch(ctx, i.cfg.InstallerURL, installerPath); err != nil {
		return false, fmt.Errorf("fetch forge installer: %w", err)
	}

	if _, err := profiles.Ensure(i.cfg.ProfilesPath()); err != nil {
		return false, err
	}

	if removed, err := util.RemoveIfExists(i.cfg.StaleExtraPath()); err != nil {
		log.Log.Warn("Could not remove %s: %v", i.cfg.StaleExtraPath(), err)
	} else if removed {
		log.Log.Info("Removed stale %s from the version directory.", config.StaleExtraFileName)
	}

	err := i.runner.Run(ctx, i.cfg.GameDir, i.cfg.JavaPath, "-jar", installerPath, "--installClient", i.cfg.GameDir)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return false, exitErr
		}
		return false, &ExitError{Command: i.cfg.JavaPath + " -jar " + installerPath + " --installClient", Err: err}
	}

	if err := os.Remove(installerPath); err != nil {
		log.Log.Warn("Could not delete installer %s: %v", installerPath, err)
	}

	if !i.Installed() {
		log.Log.Warn("Installer finished but %s was not created.", i.cfg.VersionDescriptorPath())
	}
	log.Log.Info("Forge installed successfully.")
	return true, nil
}

func tail(s string, lines int) string {
	parts := strings.Split(s, "\n")
	if len(parts) <= lines {
		return s
	}
	return strings.Join(parts[len(parts)-lines:], "\n")
}
