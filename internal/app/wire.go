// /internal/app/wire.go
package app

import (
	"io"
	"net/http"

	"forge-launcher/internal/config"
	"forge-launcher/internal/fetch"
	"forge-launcher/internal/form"
	"forge-launcher/internal/installer"
	"forge-launcher/internal/launcher"
	"forge-launcher/internal/mods"
	"forge-launcher/internal/notify"
	"forge-launcher/internal/workflow"
)

// Options override the defaults used by New. Zero values pick the real
// implementations.
type Options struct {
	HTTP *http.Client
	// Progress receives download progress bars.
	Progress io.Writer
	// InstallerOutput receives the Forge installer's output.
	InstallerOutput io.Writer
	Runner          installer.Runner
	Starter         launcher.Starter
	// Notifier defaults to terminal boxes mirrored into the log.
	Notifier notify.Notifier
	Memory   form.Memory
}

// App bundles the wired components.
type App struct {
	Config    *config.Config
	Fetcher   *fetch.Fetcher
	Installer *installer.Installer
	Mods      *mods.Placer
	Launcher  *launcher.Launcher
	Notifier  notify.Notifier
	Workflow  *workflow.Workflow
	Memory    form.Memory
}

// New constructs the dependency graph from cfg.
func New(cfg *config.Config, opts Options) *App {
	var fetchOpts []fetch.Option
	if opts.Progress != nil {
		fetchOpts = append(fetchOpts, fetch.WithProgress(opts.Progress))
	}
	fetcher := fetch.New(opts.HTTP, fetchOpts...)

	runner := opts.Runner
	if runner == nil {
		runner = installer.ExecRunner{Stdout: opts.InstallerOutput}
	}
	starter := opts.Starter
	if starter == nil {
		starter = launcher.ExecStarter{}
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Multi{notify.Terminal{}, notify.Log{}}
	}

	memory := opts.Memory
	if memory == nil {
		memory = form.Forget{}
		if cfg.RememberUsername {
			memory = form.Keyring{}
		}
	}

	inst := installer.New(cfg, fetcher, runner)
	placer := mods.New(cfg, fetcher)
	l := launcher.New(cfg, starter)

	wfOpts := workflow.Options{ModFailure: cfg.ModFailure}
	if cfg.WatchCrashes {
		wfOpts.CrashReportsDir = cfg.CrashReportsDir()
	}

	return &App{
		Config:    cfg,
		Fetcher:   fetcher,
		Installer: inst,
		Mods:      placer,
		Launcher:  l,
		Notifier:  notifier,
		Workflow:  workflow.New(inst, placer, l, notifier, wfOpts),
		Memory:    memory,
	}
}

// Form is a fresh username form over the play workflow.
func (a *App) Form() *form.Form {
	return form.New(a.Workflow, a.Notifier)
}
