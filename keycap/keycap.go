// Package keycap models parameterized keycap variants and serializes them
// into OpenSCAD invocations for the keycap_playground geometry compiler.
//
// A Keycap is a value record: construct it once with New (or one of the
// preset constructors in presets.go), then treat it as immutable. With
// returns an adjusted deep copy; nothing in this package mutates a Keycap
// after construction.
package keycap

// Keyboard geometry constants, in millimeters.
const (
	// KeyUnit is the standard keyboard key spacing (1U)
	KeyUnit = 19.05
	// BetweenSpace is the gap left between adjacent keycaps
	BetweenSpace = 0.8
)

// DefaultName is used when no name was given and no legend can supply one
const DefaultName = "keycap"

// Keycap is one named keycap configuration.
//
// Legends holds the text to engrave; an empty string means "no legend at
// that position". Fonts, FontSizes, Trans and LegendRotation are parallel
// to Legends, index for index. Render selects which sub-geometries a single
// invocation emits.
type Keycap struct {
	Name string

	Profile       string
	Height        float64
	Length        float64
	Width         float64
	DishDepth     float64
	DishThickness float64
	DishCornerFn  int
	PolygonLayers int
	WallThickness float64
	UniformWall   bool
	StemType      string
	Rotation      [3]float64

	Legends        []string
	Fonts          []string
	FontSizes      []float64
	Trans          [][3]float64
	LegendRotation [][3]float64

	Render []string

	// ColorSCADPath is an alternate wrapper executable substituted for
	// OpenSCAD at serialization time, but only if it exists on disk then.
	// Absence is not an error.
	ColorSCADPath string
}

// builder carries construction state that the finished record doesn't need.
type builder struct {
	k       Keycap
	nameSet bool
}

// Option adjusts a single attribute during construction
type Option func(*builder)

// WithName sets the keycap name. An explicitly empty name is kept as-is
// and suppresses derivation from the first legend.
func WithName(name string) Option {
	return func(b *builder) { b.k.Name = name; b.nameSet = true }
}

// WithProfile sets the key profile (riskeycap, dsa, ...)
func WithProfile(profile string) Option {
	return func(b *builder) { b.k.Profile = profile }
}

// WithHeight sets the key height
func WithHeight(h float64) Option {
	return func(b *builder) { b.k.Height = h }
}

// WithLength sets the key length (the X extent, scaled by unit size)
func WithLength(l float64) Option {
	return func(b *builder) { b.k.Length = l }
}

// WithWidth sets the key width (the Y extent)
func WithWidth(w float64) Option {
	return func(b *builder) { b.k.Width = w }
}

// WithDishDepth sets the depth of the top dish
func WithDishDepth(d float64) Option {
	return func(b *builder) { b.k.DishDepth = d }
}

// WithDishThickness sets the thickness under the dish
func WithDishThickness(d float64) Option {
	return func(b *builder) { b.k.DishThickness = d }
}

// WithDishCornerFn sets the $fn curve resolution of the dish corners
func WithDishCornerFn(fn int) Option {
	return func(b *builder) { b.k.DishCornerFn = fn }
}

// WithPolygonLayers sets the number of extruded polygon layers
func WithPolygonLayers(n int) Option {
	return func(b *builder) { b.k.PolygonLayers = n }
}

// WithWallThickness sets the keycap wall thickness
func WithWallThickness(t float64) Option {
	return func(b *builder) { b.k.WallThickness = t }
}

// WithUniformWall toggles uniform wall thickness
func WithUniformWall(uniform bool) Option {
	return func(b *builder) { b.k.UniformWall = uniform }
}

// WithStemType sets the stem type (box_cherry, cherry, alps, ...)
func WithStemType(stem string) Option {
	return func(b *builder) { b.k.StemType = stem }
}

// WithRotation sets the whole-key rotation used while printing on its side
func WithRotation(x, y, z float64) Option {
	return func(b *builder) { b.k.Rotation = [3]float64{x, y, z} }
}

// WithLegends sets the legend texts. Position in the sequence maps to a
// fixed slot (primary, secondary, front, ...).
func WithLegends(legends ...string) Option {
	return func(b *builder) { b.k.Legends = legends }
}

// WithFonts sets the per-legend fonts
func WithFonts(fonts ...string) Option {
	return func(b *builder) { b.k.Fonts = fonts }
}

// WithFontSizes sets the per-legend font sizes
func WithFontSizes(sizes ...float64) Option {
	return func(b *builder) { b.k.FontSizes = sizes }
}

// WithTrans sets the per-legend translations
func WithTrans(trans ...[3]float64) Option {
	return func(b *builder) { b.k.Trans = trans }
}

// WithLegendRotation sets the per-legend rotations
func WithLegendRotation(rotations ...[3]float64) Option {
	return func(b *builder) { b.k.LegendRotation = rotations }
}

// WithRender sets which sub-geometries to emit in one invocation
func WithRender(parts ...string) Option {
	return func(b *builder) { b.k.Render = parts }
}

// WithColorSCAD sets the path of the colorscad wrapper script
func WithColorSCAD(path string) Option {
	return func(b *builder) { b.k.ColorSCADPath = path }
}

// defaults returns the base keycap all construction starts from
func defaults() Keycap {
	return Keycap{
		Profile:       "riskeycap",
		Height:        8,
		Length:        KeyUnit - BetweenSpace,
		Width:         KeyUnit - BetweenSpace,
		DishDepth:     1,
		DishThickness: 1.5,
		DishCornerFn:  40,
		PolygonLayers: 4,
		WallThickness: 1.125,
		UniformWall:   true,
		StemType:      "box_cherry",
		Legends:       []string{""},
		Render:        []string{"keycap", "stem"},
	}
}

// New constructs a Keycap: defaults first, then the supplied options on
// top. If no name was given and the first legend is non-empty, the name is
// derived from that legend; otherwise it falls back to DefaultName.
func New(opts ...Option) Keycap {
	b := builder{k: defaults()}
	for _, opt := range opts {
		opt(&b)
	}
	if !b.nameSet {
		b.k.Name = deriveName(b.k.Legends)
	}
	return b.k
}

// With returns a deep copy of k with only the supplied attributes
// replaced. The name is never re-derived here; pass WithName to change it.
func (k Keycap) With(opts ...Option) Keycap {
	b := builder{k: k.clone(), nameSet: true}
	for _, opt := range opts {
		opt(&b)
	}
	return b.k
}

// LegendCompanion derives the legend-rendering companion of k: same
// geometry, name suffixed "_legends", render restricted to the legend
// geometry. The copy shares no slices with the base.
func (k Keycap) LegendCompanion() Keycap {
	return k.With(
		WithName(k.Name+"_legends"),
		WithRender("legends"),
	)
}

// HasLegendText reports whether k has anything to engrave. The single
// empty-string legend (the default) means "no legend"; any other value,
// including an empty list, counts as text for companion purposes.
func (k Keycap) HasLegendText() bool {
	return !(len(k.Legends) == 1 && k.Legends[0] == "")
}

func deriveName(legends []string) string {
	if len(legends) > 0 && legends[0] != "" {
		return legends[0]
	}
	return DefaultName
}

func (k Keycap) clone() Keycap {
	c := k
	c.Legends = append([]string(nil), k.Legends...)
	c.Fonts = append([]string(nil), k.Fonts...)
	c.FontSizes = append([]float64(nil), k.FontSizes...)
	c.Trans = append([][3]float64(nil), k.Trans...)
	c.LegendRotation = append([][3]float64(nil), k.LegendRotation...)
	c.Render = append([]string(nil), k.Render...)
	return c
}
