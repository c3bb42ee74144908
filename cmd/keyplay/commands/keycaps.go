package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fcasco/keycap-playground/catalog"
)

// KeycapsCmd lists every keycap name the catalog knows about.
var KeycapsCmd = &cobra.Command{
	Use:   "keycaps",
	Short: "List the names of all keycaps we can render",
	Run: func(cmd *cobra.Command, args []string) {
		cat := catalog.New()
		names := cat.Names()
		for _, name := range names {
			pterm.Println(name)
		}
		pterm.Info.Printfln("%d keycaps total", len(names))
	},
}
