// /internal/workflow/workflow.go
package workflow

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"forge-launcher/internal/config"
	"forge-launcher/internal/launcher"
	"forge-launcher/internal/log"
	"forge-launcher/internal/notify"
)

// Installer makes the configured version present.
type Installer interface {
	EnsureInstalled(ctx context.Context) (ran bool, err error)
}

// ModPlacer makes the configured mod present.
type ModPlacer interface {
	EnsureMod(ctx context.Context) (fetched bool, err error)
}

// Launcher starts the game.
type Launcher interface {
	Launch(ctx context.Context, username string) (*launcher.Session, error)
}

// Status is the outcome of one step.
type Status string

const (
	StatusNotRun  Status = "not run"
	StatusSkipped Status = "skipped" // already in place
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

type StepResult struct {
	Status Status
	Err    error
}

func (r StepResult) Failed() bool { return r.Status == StatusFailed }

// Report describes one run of the play workflow.
type Report struct {
	Username string
	// Input is set when the username was rejected and nothing ran.
	Input    error
	Install  StepResult
	Mod      StepResult
	Launch   StepResult
	// Session is set when the game was started.
	Session  *launcher.Session
}

// Err is the first error of the run, if any.
func (r Report) Err() error {
	if r.Input != nil {
		return r.Input
	}
	for _, s := range []StepResult{r.Install, r.Mod, r.Launch} {
		if s.Err != nil {
			return s.Err
		}
	}
	return nil
}

// Launched reports whether the game was started.
func (r Report) Launched() bool { return r.Launch.Status == StatusDone }

type Options struct {
	ModFailure config.ModFailurePolicy
	// CrashReportsDir is watched while the game runs. Empty disables it.
	CrashReportsDir string
}

// Workflow runs install, mod placement and launch in order.
type Workflow struct {
	installer Installer
	mods      ModPlacer
	launcher  Launcher
	notifier  notify.Notifier
	opts      Options
}

func New(i Installer, m ModPlacer, l Launcher, n notify.Notifier, opts Options) *Workflow {
	if opts.ModFailure == "" {
		opts.ModFailure = config.ModFailureAbort
	}
	return &Workflow{installer: i, mods: m, launcher: l, notifier: n, opts: opts}
}

func notRun() Report {
	return Report{
		Install: StepResult{Status: StatusNotRun},
		Mod:     StepResult{Status: StatusNotRun},
		Launch:  StepResult{Status: StatusNotRun},
	}
}

// Run plays as username. Every failure is shown as a dialog when it happens
// and recorded in the report; Run itself never fails.
func (w *Workflow) Run(ctx context.Context, username string) Report {
	report := notRun()
	username = strings.TrimSpace(username)
	report.Username = username
	if username == "" {
		w.notifier.Warn("Warning", "Please enter your username.")
		report.Input = ErrEmptyUsername
		return report
	}

	if !w.Prepare(ctx, &report) {
		return report
	}

	session, err := w.launcher.Launch(ctx, username)
	if err != nil {
		report.Launch = w.fail("Error launching the game", err)
		return report
	}
	report.Launch = StepResult{Status: StatusDone}
	report.Session = session
	w.notifier.Info("Success", fmt.Sprintf("Minecraft is starting as %s.", username))

	if dir := w.opts.CrashReportsDir; dir != "" {
		err := session.MonitorCrashes(dir, func(path string) {
			w.notifier.Error("Minecraft crashed", "Crash report: "+filepath.Base(path))
		})
		if err != nil {
			log.Log.Warn("Crash reports will not be watched: %v", err)
		}
	}
	return report
}

// Prepare installs Forge and places the mod. It reports whether launching
// may proceed under the configured mod failure policy.
func (w *Workflow) Prepare(ctx context.Context, report *Report) bool {
	ran, err := w.installer.EnsureInstalled(ctx)
	if err != nil {
		report.Install = w.fail("Error installing Forge", err)
		return false
	}
	report.Install = StepResult{Status: done(ran)}

	fetched, err := w.mods.EnsureMod(ctx)
	if err != nil {
		report.Mod = w.fail("Error installing the mod", err)
		if w.opts.ModFailure == config.ModFailureContinue {
			log.Log.Warn("Continuing without the mod.")
			return true
		}
		return false
	}
	report.Mod = StepResult{Status: done(fetched)}
	return true
}

func (w *Workflow) fail(title string, err error) StepResult {
	log.Log.Error("%s (%s): %v", title, KindOf(err), err)
	w.notifier.Error("Error", fmt.Sprintf("%s: %v", title, err))
	return StepResult{Status: StatusFailed, Err: err}
}

func done(ran bool) Status {
	if ran {
		return StatusDone
	}
	return StatusSkipped
}
