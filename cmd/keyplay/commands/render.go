package commands

import (
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/spf13/cobra"

	"github.com/fcasco/keycap-playground/catalog"
	"github.com/fcasco/keycap-playground/config"
	"github.com/fcasco/keycap-playground/errors"
	"github.com/fcasco/keycap-playground/keycap"
	"github.com/fcasco/keycap-playground/logger"
	"github.com/fcasco/keycap-playground/plan"
	"github.com/fcasco/keycap-playground/runner"
)

var (
	renderOut          string
	renderFileType     string
	renderForce        bool
	renderLegends      bool
	renderMaxProcesses int
	renderScadArgs     string
	renderColorSCAD    string
	renderPace         time.Duration
)

// RenderCmd renders keycaps: all of them by default, or just the named ones.
var RenderCmd = &cobra.Command{
	Use:   "render [name ...]",
	Short: "Render keycaps to STL or 3MF via OpenSCAD",
	Long: `Render keycaps by invoking OpenSCAD against keycap_playground.scad.

With no arguments every keycap in the catalog is rendered. Names are
matched case-insensitively; unknown names are skipped with a warning so
the rest of the batch still runs. Existing output files are skipped
unless --force is given.`,
	RunE: runRender,
}

func init() {
	RenderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output directory for generated files")
	RenderCmd.Flags().StringVarP(&renderFileType, "file-type", "t", "", "Output file type: stl or 3mf")
	RenderCmd.Flags().BoolVarP(&renderForce, "force", "f", false, "Re-render even if the output file already exists")
	RenderCmd.Flags().BoolVarP(&renderLegends, "legends", "l", false, "Also render a separate legends file per keycap")
	RenderCmd.Flags().IntVarP(&renderMaxProcesses, "max-processes", "j", 0, "Max simultaneous OpenSCAD processes (0 = one per physical core)")
	RenderCmd.Flags().StringVar(&renderScadArgs, "scad-args", "", "Extra OpenSCAD arguments appended to every invocation")
	RenderCmd.Flags().StringVar(&renderColorSCAD, "colorscad", "", "Path to a colorscad wrapper script")
	RenderCmd.Flags().DurationVar(&renderPace, "pace", 0, "Minimum delay between process launches (e.g. 1s)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	overlayRenderFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	fileType, err := cfg.ParsedFileType()
	if err != nil {
		return err
	}
	extraArgs, err := cfg.ExtraArgs()
	if err != nil {
		return err
	}

	keycap.SetToolPaths(cfg.OpenSCADPath, cfg.PlaygroundPath)
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", cfg.OutputDir)
	}

	planner := plan.New(catalog.New(), logger.Logger)
	commands := planner.Plan(plan.Options{
		Names:         args,
		OutputDir:     cfg.OutputDir,
		FileType:      fileType,
		Force:         renderForce,
		Legends:       cfg.Legends,
		ExtraArgs:     extraArgs,
		ColorSCADPath: cfg.ColorSCADPath,
	})
	if len(commands) == 0 {
		pterm.Info.Println("Nothing to render")
		return nil
	}

	poolSize := resolvePoolSize(cfg.MaxProcesses)

	var opts []runner.Option
	if cfg.Pace > 0 {
		opts = append(opts, runner.WithPacing(cfg.Pace))
	}
	run := runner.New(poolSize, logger.Logger, opts...)

	start := time.Now()
	results := run.Run(cmd.Context(), commands)
	elapsed := time.Since(start).Round(time.Millisecond)

	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
	}
	if failed > 0 {
		pterm.Warning.Printfln("Rendered %d/%d keycap files in %s (%d failed)",
			len(results)-failed, len(results), elapsed, failed)
	} else {
		pterm.Success.Printfln("Rendered %d keycap files in %s", len(results), elapsed)
	}
	return nil
}

// overlayRenderFlags applies explicitly-set command-line flags over the
// loaded configuration. Flags the user didn't touch leave the config values
// (file/env/defaults) in place.
func overlayRenderFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = renderOut
	}
	if cmd.Flags().Changed("file-type") {
		cfg.FileType = renderFileType
	}
	if cmd.Flags().Changed("legends") {
		cfg.Legends = renderLegends
	}
	if cmd.Flags().Changed("max-processes") {
		cfg.MaxProcesses = renderMaxProcesses
	}
	if cmd.Flags().Changed("scad-args") {
		cfg.ScadArgs = renderScadArgs
	}
	if cmd.Flags().Changed("colorscad") {
		cfg.ColorSCADPath = renderColorSCAD
	}
	if cmd.Flags().Changed("pace") {
		cfg.Pace = renderPace
	}
}

// resolvePoolSize turns the configured max_processes into a concrete pool
// size. Zero means one process per physical core, matching how long an
// OpenSCAD render keeps a core busy.
func resolvePoolSize(maxProcesses int) int {
	if maxProcesses > 0 {
		return maxProcesses
	}
	cores, err := cpu.Counts(false)
	if err != nil || cores < 1 {
		logger.Warnf("Could not detect CPU core count, falling back to %d: %v",
			runner.DefaultMaxConcurrent, err)
		return runner.DefaultMaxConcurrent
	}
	logger.Debugf("Auto-sized process pool to %d physical cores", cores)
	return cores
}
