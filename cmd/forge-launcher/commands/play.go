// /cmd/forge-launcher/commands/play.go
package commands

import (
	"context"
	"io"
	"os"

	"forge-launcher/internal/app"
	"forge-launcher/internal/form"
	"forge-launcher/internal/log"
	"forge-launcher/internal/workflow"

	"github.com/spf13/cobra"
)

func playCmd(o *rootOptions) *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Ask for a username, install what is missing and launch the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, o, username)
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Play as this username without showing the form")
	return cmd
}

func newApp(o *rootOptions) *app.App {
	return app.New(o.cfg, app.Options{
		Progress:        os.Stderr,
		InstallerOutput: installerOutput(o.cfg.LogLevel),
	})
}

// The installer is chatty; its output is only echoed at debug level.
func installerOutput(level string) io.Writer {
	if level == "debug" {
		return os.Stdout
	}
	return nil
}

func runPlay(cmd *cobra.Command, o *rootOptions, username string) error {
	ctx := cmd.Context()
	a := newApp(o)

	var report workflow.Report
	if username == "" {
		r, err := form.NewTerminal(a.Form(), a.Memory).Run(ctx)
		if err != nil {
			return err
		}
		report = r
	} else {
		report = a.Workflow.Run(ctx, username)
		if err := report.Err(); err != nil && !report.Launched() {
			return &shownError{err}
		}
	}

	waitForGame(ctx, report, o.cfg.WatchCrashes)
	return nil
}

// waitForGame keeps the process alive while crash reports are watched.
func waitForGame(ctx context.Context, report workflow.Report, watching bool) {
	if !watching || report.Session == nil {
		return
	}
	log.Log.Info("Waiting for Minecraft to exit...")
	select {
	case <-report.Session.Done():
		if err := report.Session.Wait(); err != nil {
			log.Log.Warn("Minecraft exited: %v", err)
		}
	case <-ctx.Done():
	}
}
