// /cmd/forge-launcher/commands/root.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"forge-launcher/internal/config"
	"forge-launcher/internal/log"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags and the configuration built from
// them.
type rootOptions struct {
	configPath string
	flags      config.Config
	modFailure string

	cfg *config.Config
}

// shownError is a failure the player has already seen in a dialog.
type shownError struct{ err error }

func (e *shownError) Error() string { return e.err.Error() }
func (e *shownError) Unwrap() error { return e.err }

func Execute(ctx context.Context) error {
	err := newRootCmd(&rootOptions{}).ExecuteContext(ctx)
	var shown *shownError
	if err != nil && !errors.As(err, &shown) {
		fmt.Fprintf(os.Stderr, "[CRITICAL] %v\n", err)
	}
	return err
}

func newRootCmd(o *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "forge-launcher",
		Short:         "Install Forge and a mod, then launch Minecraft",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, o, "")
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "YAML config file (default <user config dir>/forge-launcher/config.yml)")
	pf.StringVar(&o.flags.GameDir, "game-dir", "", "Minecraft game directory (default: the platform's .minecraft)")
	pf.StringVar(&o.flags.VersionID, "version-id", config.DefaultVersionID, "Installed version id to launch")
	pf.StringVar(&o.flags.InstallerURL, "installer-url", config.DefaultInstallerURL, "Forge installer download URL")
	pf.StringVar(&o.flags.ModURL, "mod-url", config.DefaultModURL, "Mod jar download URL")
	pf.StringVar(&o.flags.JavaPath, "java", "java", "Java executable")
	pf.IntVar(&o.flags.Width, "width", config.DefaultWidth, "Game window width")
	pf.IntVar(&o.flags.Height, "height", config.DefaultHeight, "Game window height")
	pf.StringVar(&o.flags.LogLevel, "log-level", "quiet", "Set log level (debug, info, warn, error, quiet)")
	pf.StringVar(&o.modFailure, "mod-failure", string(config.ModFailureAbort), "What a failed mod download does: abort or continue")
	pf.BoolVar(&o.flags.WatchCrashes, "watch-crashes", false, "Watch crash-reports/ while the game runs")
	pf.BoolVar(&o.flags.RememberUsername, "remember-username", true, "Remember the last username in the OS keyring")

	root.AddCommand(playCmd(o), installCmd(o), versionsCmd(o), cleanCmd(o))
	return root
}

// load applies defaults, then the config file, then flags the user set.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("game-dir", func() { cfg.GameDir = o.flags.GameDir })
	set("version-id", func() { cfg.VersionID = o.flags.VersionID })
	set("installer-url", func() { cfg.InstallerURL = o.flags.InstallerURL })
	set("mod-url", func() { cfg.ModURL = o.flags.ModURL })
	set("java", func() { cfg.JavaPath = o.flags.JavaPath })
	set("width", func() { cfg.Width = o.flags.Width })
	set("height", func() { cfg.Height = o.flags.Height })
	set("log-level", func() { cfg.LogLevel = o.flags.LogLevel })
	set("mod-failure", func() { cfg.ModFailure = config.ModFailurePolicy(o.modFailure) })
	set("watch-crashes", func() { cfg.WatchCrashes = o.flags.WatchCrashes })
	set("remember-username", func() { cfg.RememberUsername = o.flags.RememberUsername })

	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Init(cfg.LogLevel)
	o.cfg = cfg
	return nil
}
