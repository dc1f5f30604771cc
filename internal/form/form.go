// /internal/form/form.go

// Package form is the username form in front of the play workflow.
package form

import (
	"context"
	"errors"
	"strings"
	"sync"

	"forge-launcher/internal/notify"
	"forge-launcher/internal/workflow"
)

var (
	ErrEmptyUsername = workflow.ErrEmptyUsername
	ErrBusy          = errors.New("a launch is already in progress")
)

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Runner runs the play workflow for a username.
type Runner interface {
	Run(ctx context.Context, username string) workflow.Report
}

// Form accepts one submission at a time.
type Form struct {
	runner   Runner
	notifier notify.Notifier

	mu    sync.Mutex
	state State
}

func New(runner Runner, notifier notify.Notifier) *Form {
	return &Form{runner: runner, notifier: notifier}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit starts the workflow for username on its own goroutine. The report is
// delivered on the returned channel once the form is idle again.
func (f *Form) Submit(ctx context.Context, username string) (<-chan workflow.Report, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		f.notifier.Warn("Warning", "Please enter your username.")
		return nil, ErrEmptyUsername
	}

	f.mu.Lock()
	if f.state == Running {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	f.state = Running
	f.mu.Unlock()

	reports := make(chan workflow.Report, 1)
	go func() {
		defer close(reports)
		report := f.runner.Run(ctx, username)

		f.mu.Lock()
		f.state = Idle
		f.mu.Unlock()
		reports <- report
	}()
	return reports, nil
}
