// /cmd/forge-launcher/commands/clean.go
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"forge-launcher/internal/app"
)

func cleanCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the downloaded installer and mod jar",
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.Clean(o.cfg)
			if err != nil {
				return fmt.Errorf("clean operation failed: %w", err)
			}
			if len(removed) == 0 {
				fmt.Println("Nothing to remove.")
			}
			for _, path := range removed {
				fmt.Println("Removed", path)
			}
			return nil
		},
	}
}
