// /internal/form/terminal.go
package form

import (
	"context"
	"errors"

	"forge-launcher/internal/log"
	"forge-launcher/internal/workflow"

	"github.com/pterm/pterm"
)

// Terminal drives a Form from an interactive prompt.
type Terminal struct {
	form   *Form
	memory Memory

	// Prompt asks for the username, pre-filled with last.
	Prompt func(last string) (string, error)
	// Spinner shows progress while the workflow runs.
	Spinner bool
}

func NewTerminal(form *Form, memory Memory) *Terminal {
	return &Terminal{form: form, memory: memory, Prompt: promptUsername, Spinner: true}
}

func promptUsername(last string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultValue(last).Show("Username")
}

// Run prompts until a launch succeeds or ctx is done, and returns the
// report of the successful run.
func (t *Terminal) Run(ctx context.Context) (workflow.Report, error) {
	for {
		if err := ctx.Err(); err != nil {
			return workflow.Report{}, err
		}
		name, err := t.Prompt(t.memory.Last())
		if err != nil {
			return workflow.Report{}, err
		}

		reports, err := t.form.Submit(ctx, name)
		if errors.Is(err, ErrEmptyUsername) {
			continue
		}
		if err != nil {
			return workflow.Report{}, err
		}

		report, err := t.wait(ctx, reports)
		if err != nil {
			return report, err
		}
		if report.Launched() {
			if err := t.memory.Remember(report.Username); err != nil {
				log.Log.Warn("Could not remember username: %v", err)
			}
			return report, nil
		}
	}
}

func (t *Terminal) wait(ctx context.Context, reports <-chan workflow.Report) (workflow.Report, error) {
	var spinner *pterm.SpinnerPrinter
	if t.Spinner {
		spinner, _ = pterm.DefaultSpinner.Start("Preparing Minecraft...")
	}

	select {
	case report := <-reports:
		if spinner != nil {
			if report.Launched() {
				spinner.Success("Minecraft launched")
			} else {
				spinner.Fail("Launch failed")
			}
		}
		return report, nil
	case <-ctx.Done():
		if spinner != nil {
			_ = spinner.Stop()
		}
		return workflow.Report{}, ctx.Err()
	}
}
