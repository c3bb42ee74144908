package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fcasco/keycap-playground/version"
)

// VersionCmd prints build information baked in at link time.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Run: func(cmd *cobra.Command, args []string) {
		pterm.Println(version.Get().String())
	},
}
