// /internal/launcher/launcher.go
package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"forge-launcher/internal/config"
	"forge-launcher/internal/log"
	"forge-launcher/internal/versions"
)

// Process is a started game.
type Process interface {
	Pid() int
	Wait() error
}

// Starter starts argv in dir without waiting for it.
type Starter interface {
	Start(dir string, argv []string) (Process, error)
}

// StartError means the resolved command could not be started.
type StartError struct {
	Command string
	Err     error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to launch Minecraft (%s): %v", e.Command, e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// ExecStarter starts the game as a detached child with no attached stdio.
type ExecStarter struct{}

func (ExecStarter) Start(dir string, argv []string) (Process, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return execProcess{cmd}, nil
}

type execProcess struct{ cmd *exec.Cmd }

func (p execProcess) Pid() int    { return p.cmd.Process.Pid }
func (p execProcess) Wait() error { return p.cmd.Wait() }

// Session tracks a launched game.
type Session struct {
	Command *Command
	Process Process

	done chan struct{}
	err  error
}

func newSession(cmd *Command, p Process) *Session {
	s := &Session{Command: cmd, Process: p, done: make(chan struct{})}
	go func() {
		s.err = p.Wait()
		close(s.done)
	}()
	return s
}

// Done is closed when the game exits.
func (s *Session) Done() <-chan struct{} { return s.done }

// Wait blocks until the game exits and returns its exit error.
func (s *Session) Wait() error {
	<-s.done
	return s.err
}

// Launcher resolves and starts the configured version.
type Launcher struct {
	cfg     *config.Config
	starter Starter
	env     versions.Environment
}

func New(cfg *config.Config, starter Starter) *Launcher {
	return &Launcher{cfg: cfg, starter: starter, env: LaunchEnvironment()}
}

// WithEnvironment overrides the rule environment, mainly for tests.
func (l *Launcher) WithEnvironment(env versions.Environment) *Launcher {
	l.env = env
	return l
}

// Options builds the launch options for username from the configuration.
func (l *Launcher) Options(username string) Options {
	return Options{
		Username:  username,
		Version:   l.cfg.VersionID,
		GameDir:   l.cfg.GameDir,
		AssetsDir: l.cfg.AssetsDir(),
		JavaPath:  l.cfg.JavaPath,
		Width:     l.cfg.Width,
		Height:    l.cfg.Height,
	}
}

// Launch resolves the command for username and starts the game. The game
// outlives ctx; ctx only bounds native extraction.
func (l *Launcher) Launch(ctx context.Context, username string) (*Session, error) {
	cmd, err := Resolve(l.Options(username), l.env)
	if err != nil {
		return nil, err
	}

	if err := EnsureClientJar(cmd.Descriptor, l.cfg.VersionsDir()); err != nil {
		return nil, &ResolveError{Version: l.cfg.VersionID, Err: err}
	}

	n, err := ExtractNatives(ctx, cmd.Descriptor, l.env, l.cfg.LibrariesDir(), cmd.NativesDir)
	if err != nil {
		return nil, &ResolveError{Version: l.cfg.VersionID, Err: err}
	}
	if n > 0 {
		log.Log.Info("Extracted %d native libraries into %s", n, cmd.NativesDir)
	}

	log.Log.Info("Launching Minecraft %s as %s...", l.cfg.VersionID, username)
	log.Log.Debug("Command: %s", strings.Join(cmd.Argv(), " "))
	p, err := l.starter.Start(l.cfg.GameDir, cmd.Argv())
	if err != nil {
		return nil, &StartError{Command: cmd.Path, Err: err}
	}
	log.Log.Info("Game launched. Process ID: %d", p.Pid())
	return newSession(cmd, p), nil
}
