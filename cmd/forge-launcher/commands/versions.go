// /cmd/forge-launcher/commands/versions.go
package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"forge-launcher/internal/versions"
)

func versionsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the versions installed in the game directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := versions.List(o.cfg.VersionsDir())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Printf("No versions installed in %s\n", o.cfg.VersionsDir())
				return nil
			}

			lid, lparent := len("ID:"), len("INHERITS FROM:")
			for _, v := range list {
				lid = max(lid, len(label(v)))
				lparent = max(lparent, len(v.Parent))
			}

			fmt.Println(text.AlignDefault.Apply("ID:", lid+2) + text.AlignDefault.Apply("INHERITS FROM:", lparent+2) + "STATUS:")
			for _, v := range list {
				id := label(v)
				if v.Folder == o.cfg.VersionID {
					id = text.Bold.Sprint(id)
				}
				fmt.Println(text.AlignDefault.Apply(id, lid+2) + text.AlignDefault.Apply(v.Parent, lparent+2) + status(v, o.cfg.VersionID))
			}
			return nil
		},
	}
}

func label(v versions.Installed) string {
	if v.ID != "" {
		return v.ID
	}
	return v.Folder
}

func status(v versions.Installed, configured string) string {
	switch {
	case v.Err != nil:
		return "broken: " + v.Err.Error()
	case v.Folder == configured:
		return "configured"
	}
	return "ok"
}
