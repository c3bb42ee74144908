// Package plan turns a render request into the ordered list of OpenSCAD
// invocations to execute.
//
// Planning owns every filesystem-existence decision (skip-if-exists,
// force) so that serialization in the keycap package stays side-effect
// free. A variant's legend invocation always follows its own keycap
// invocation when both are produced.
package plan

import (
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/fcasco/keycap-playground/catalog"
	"github.com/fcasco/keycap-playground/keycap"
)

// Options describes one render request
type Options struct {
	// Names are the requested keycap names; empty means the whole catalog
	Names []string
	// OutputDir is where artifacts land
	OutputDir string
	// FileType for primary artifacts (legend companions always use
	// keycap.LegendFileType)
	FileType keycap.FileType
	// Force re-renders artifacts that already exist
	Force bool
	// Legends additionally renders each variant's legend companion
	Legends bool
	// ExtraArgs are validated pass-through OpenSCAD arguments appended to
	// every invocation
	ExtraArgs []string
	// ColorSCADPath, when set, is stamped onto every target so
	// serialization can substitute the colorscad wrapper if it exists
	ColorSCADPath string
}

// Planner resolves requested names against a catalog and emits invocations
type Planner struct {
	catalog *catalog.Catalog
	log     *zap.SugaredLogger
}

// New creates a Planner over the given catalog
func New(cat *catalog.Catalog, log *zap.SugaredLogger) *Planner {
	return &Planner{catalog: cat, log: log}
}

// Plan produces the ordered invocation list for the request. Unmatched
// names are warned about and skipped; they never fail the batch.
func (p *Planner) Plan(opts Options) []string {
	var commands []string
	for _, k := range p.targets(opts) {
		if cmd, ok := p.keycapCommand(k, opts); ok {
			commands = append(commands, cmd)
		}
		if opts.Legends {
			if cmd, ok := p.legendCommand(k, opts); ok {
				commands = append(commands, cmd)
			}
		}
	}
	return commands
}

// targets resolves the requested names to catalog variants, in request
// order; with no names, the whole catalog in catalog order.
func (p *Planner) targets(opts Options) []keycap.Keycap {
	var targets []keycap.Keycap
	if len(opts.Names) == 0 {
		targets = p.catalog.All()
	} else {
		targets = make([]keycap.Keycap, 0, len(opts.Names))
		for _, name := range opts.Names {
			k, err := p.catalog.Find(name)
			if err != nil {
				p.log.Warnf("Could not find a keycap named %s", name)
				continue
			}
			targets = append(targets, k)
		}
	}
	if opts.ColorSCADPath != "" {
		for i, k := range targets {
			targets[i] = k.With(keycap.WithColorSCAD(opts.ColorSCADPath))
		}
	}
	return targets
}

// keycapCommand emits the primary invocation for k, unless its artifact
// already exists and force is not set.
func (p *Planner) keycapCommand(k keycap.Keycap, opts Options) (string, bool) {
	path := artifactPath(opts.OutputDir, k.Name, opts.FileType)
	if p.shouldSkip(path, opts.Force) {
		return "", false
	}

	p.log.Infof("Rendering %s...", path)
	cmd := p.withExtras(k.Command(opts.OutputDir, opts.FileType), opts.ExtraArgs)
	p.log.Debugw("Planned invocation", "keycap", k.Name, "command", cmd)
	return cmd, true
}

// legendCommand emits the legend-companion invocation for k. Variants
// whose legends are the single empty string have nothing to engrave and
// produce no companion.
func (p *Planner) legendCommand(k keycap.Keycap, opts Options) (string, bool) {
	if !k.HasLegendText() {
		return "", false
	}

	legend := k.LegendCompanion()
	path := artifactPath(opts.OutputDir, legend.Name, keycap.LegendFileType)
	if p.shouldSkip(path, opts.Force) {
		return "", false
	}

	p.log.Infof("Rendering %s...", path)
	cmd := p.withExtras(legend.Command(opts.OutputDir, keycap.LegendFileType), opts.ExtraArgs)
	p.log.Debugw("Planned legend invocation", "keycap", legend.Name, "command", cmd)
	return cmd, true
}

// shouldSkip reports whether the artifact already exists and force is off
func (p *Planner) shouldSkip(path string, force bool) bool {
	if force {
		return false
	}
	if _, err := os.Stat(path); err == nil {
		p.log.Infof("%s exists; skipping...", path)
		return true
	}
	return false
}

func (p *Planner) withExtras(cmd string, extra []string) string {
	if len(extra) == 0 {
		return cmd
	}
	return cmd + " " + shellquote.Join(extra...)
}

func artifactPath(dir, name string, ft keycap.FileType) string {
	return fmt.Sprintf("%s/%s.%s", dir, name, ft)
}
