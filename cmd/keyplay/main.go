package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fcasco/keycap-playground/cmd/keyplay/commands"
	"github.com/fcasco/keycap-playground/logger"
)

var rootCmd = &cobra.Command{
	Use:   "keyplay",
	Short: "Render a full set of riskeycap keycaps with OpenSCAD",
	Long: `keyplay - parameterized keycap rendering driver.

keyplay keeps a catalog of keycap variants (a whole keyboard's worth plus
a few extras), serializes each one into an OpenSCAD invocation against
keycap_playground.scad, and executes the batch with a bounded number of
parallel OpenSCAD processes.

Available commands:
  render  - Render keycaps (all of them, or specific names)
  keycaps - List the names of all keycaps we can render
  version - Show build information

Examples:
  keyplay keycaps                  # What can we render?
  keyplay render -o out            # Render everything that's missing
  keyplay render -f A B C          # Re-render three keycaps
  keyplay render -l -t 3mf space   # 3MF spacebar plus legend files`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail)")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON for machine consumption")

	rootCmd.AddCommand(commands.RenderCmd)
	rootCmd.AddCommand(commands.KeycapsCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
