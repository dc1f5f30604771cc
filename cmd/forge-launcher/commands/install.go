// /cmd/forge-launcher/commands/install.go
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"forge-launcher/internal/workflow"
)

func installCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install Forge and the mod without launching",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(o)
			report := workflow.Report{}
			a.Workflow.Prepare(cmd.Context(), &report)
			if err := report.Err(); err != nil {
				return &shownError{err}
			}
			fmt.Printf("Forge %s: %s\nMod: %s\n", o.cfg.VersionID, report.Install.Status, report.Mod.Status)
			return nil
		},
	}
}
