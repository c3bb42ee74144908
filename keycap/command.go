package keycap

import (
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/fcasco/keycap-playground/errors"
)

// FileType is an output model format accepted by OpenSCAD
type FileType string

// Supported output formats
const (
	FileTypeSTL FileType = "stl"
	FileType3MF FileType = "3mf"
)

// LegendFileType is the format legend companions always render to,
// independent of the format requested for the primary artifact.
const LegendFileType = FileTypeSTL

// ParseFileType validates a user-supplied file type string
func ParseFileType(s string) (FileType, error) {
	switch FileType(strings.ToLower(s)) {
	case FileTypeSTL:
		return FileTypeSTL, nil
	case FileType3MF:
		return FileType3MF, nil
	default:
		return "", errors.WithHint(
			errors.NewInvalidConfigError("unsupported file type %q", s),
			"supported file types: stl, 3mf")
	}
}

// Tool locations are resolved once per process. SetToolPaths lets the CLI
// override them from configuration before any serialization happens.
var (
	openscadPath   = defaultOpenSCADPath()
	playgroundPath = "keycap_playground.scad"
)

func defaultOpenSCADPath() string {
	if path, err := exec.LookPath("openscad"); err == nil {
		return path
	}
	return "openscad"
}

// SetToolPaths overrides the resolved OpenSCAD executable and the
// keycap_playground.scad entry point. Empty arguments leave the current
// value in place.
func SetToolPaths(openscad, playground string) {
	if openscad != "" {
		openscadPath = openscad
	}
	if playground != "" {
		playgroundPath = playground
	}
}

// OpenSCADPath returns the OpenSCAD executable used for serialization
func OpenSCADPath() string {
	return openscadPath
}

// Command serializes k into a single shell invocation of OpenSCAD writing
// {outputDir}/{name}.{ft}. It is a pure string builder: no process is
// spawned and nothing is written.
//
// The one environmental input is ColorSCADPath: when set, it replaces the
// OpenSCAD executable only if it exists on disk at call time. Two calls on
// the same Keycap can therefore differ if that file appears or disappears
// between them; that matches the original driver and is intentional.
func (k Keycap) Command(outputDir string, ft FileType) string {
	exe := openscadPath
	if k.ColorSCADPath != "" {
		if _, err := os.Stat(k.ColorSCADPath); err == nil {
			exe = k.ColorSCADPath
		}
	}

	var b strings.Builder
	b.WriteString(exe)
	b.WriteByte(' ')
	b.WriteString(playgroundPath)
	b.WriteString(" -o '")
	b.WriteString(outputDir)
	b.WriteByte('/')
	b.WriteString(k.Name)
	b.WriteByte('.')
	b.WriteString(string(ft))
	b.WriteByte('\'')

	// Every -D value sits inside shell single quotes; escaping of embedded
	// single quotes happens in the string formatters.
	define := func(name, value string) {
		b.WriteString(" -D '")
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
		b.WriteByte('\'')
	}

	define("KEY_PROFILE", quoteString(k.Profile))
	define("KEY_HEIGHT", formatFloat(k.Height))
	define("KEY_LENGTH", formatFloat(k.Length))
	define("KEY_WIDTH", formatFloat(k.Width))
	define("WALL_THICKNESS", formatFloat(k.WallThickness))
	define("UNIFORM_WALL_THICKNESS", strconv.FormatBool(k.UniformWall))
	define("DISH_DEPTH", formatFloat(k.DishDepth))
	define("DISH_THICKNESS", formatFloat(k.DishThickness))
	define("DISH_CORNER_FN", strconv.Itoa(k.DishCornerFn))
	define("POLYGON_LAYERS", strconv.Itoa(k.PolygonLayers))
	define("STEM_TYPE", quoteString(k.StemType))
	define("KEY_ROTATION", formatTriple(k.Rotation))
	define("LEGENDS", tightStringList(k.Legends))
	define("LEGEND_FONTS", stringList(k.Fonts))
	define("LEGEND_FONT_SIZES", floatList(k.FontSizes))
	define("LEGEND_TRANS", tripleList(k.Trans))
	define("LEGEND_ROTATION", tripleList(k.LegendRotation))
	define("RENDER", stringList(k.Render))

	return b.String()
}

// escapeShellSingles makes a value safe inside a single-quoted shell
// argument using the close-quote/escaped-quote/reopen-quote idiom.
func escapeShellSingles(s string) string {
	return strings.ReplaceAll(s, "'", `'"'"'`)
}

func quoteString(s string) string {
	return `"` + escapeShellSingles(s) + `"`
}

// tightStringList renders legends: each element double-quoted, commas with
// no trailing space. This is the observable contract distinguishing the
// legends list from every other list parameter.
func tightStringList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quoteString(item)
	}
	return "[" + strings.Join(quoted, ",") + "]"
}

// stringList renders other string lists (render, fonts) with a single
// space after each comma.
func stringList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quoteString(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// formatFloat renders a float in minimal decimal form: 110.1, -90, 1.0125
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func floatList(items []float64) string {
	parts := make([]string, len(items))
	for i, f := range items {
		parts[i] = formatFloat(f)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatTriple(t [3]float64) string {
	return floatList(t[:])
}

func tripleList(items [][3]float64) string {
	parts := make([]string, len(items))
	for i, t := range items {
		parts[i] = formatTriple(t)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
