package keycap

import "strings"

// Preset constructors for the riskeycap profile.
//
// Each specialization applies its own defaults first and the caller's
// options second, so callers can override anything a preset pre-filled.
// Size classes additionally prefix the resolved name with their size tag;
// the prefixing is idempotent and case-sensitive.

// Riskeycap constructs a keycap with the riskeycap profile defaults:
// printed on its side, thin uniform walls, box_cherry stem.
func Riskeycap(opts ...Option) Keycap {
	preset := []Option{
		WithProfile("riskeycap"),
		WithRotation(0, 110.1, -90),
		WithWallThickness(0.45 * 2.25),
		WithUniformWall(true),
		WithDishThickness(1.0),
		WithDishCornerFn(40),
		WithPolygonLayers(4),
		WithStemType("box_cherry"),
		WithRender("keycap", "stem"),
	}
	return New(append(preset, opts...)...)
}

// Alphas constructs a letter key: three legend slots (main, secondary,
// front) in the standard Gotham Rounded layout.
func Alphas(opts ...Option) Keycap {
	preset := []Option{
		WithFonts(
			"Gotham Rounded:style=Bold",
			"Gotham Rounded:style=Bold",
			"Arial Black:style=Regular",
		),
		WithFontSizes(4.5, 4, 4),
		WithTrans(
			[3]float64{-3, -2.6, 2},
			[3]float64{3.5, 3, 1},
			[3]float64{0.15, -3, 2},
		),
		WithLegendRotation(
			[3]float64{0, -20, 0},
			[3]float64{0, -20, 0},
			[3]float64{0, -20, 0},
		),
	}
	return Riskeycap(append(preset, opts...)...)
}

// Numrow constructs a number-row key: four legend slots (number, shifted
// symbol, front, F-key) so legends like ["1","","!","F1"] land in the
// right positions.
func Numrow(opts ...Option) Keycap {
	preset := []Option{
		WithFonts(
			"Gotham Rounded:style=Bold",
			"Gotham Rounded:style=Bold",
			"Gotham Rounded:style=Bold",
			"Arial Black:style=Regular",
		),
		WithFontSizes(4.5, 4, 4, 3.5),
		WithTrans(
			[3]float64{-3, -2.6, 2},
			[3]float64{3.5, 3, 1},
			[3]float64{0.15, -3, 2},
			[3]float64{0.2, -2.5, 1.8},
		),
		WithLegendRotation(
			[3]float64{0, -20, 0},
			[3]float64{0, -20, 0},
			[3]float64{0, -20, 0},
			[3]float64{68, 0, 0},
		),
	}
	return Riskeycap(append(preset, opts...)...)
}

// sized builds a horizontally stretched key: Alphas layout, length scaled
// to the given unit multiple, name prefixed with the size tag.
func sized(tag string, units float64, opts []Option) Keycap {
	preset := []Option{WithLength(KeyUnit*units - BetweenSpace)}
	k := Alphas(append(preset, opts...)...)
	k.Name = prefixName(k.Name, tag)
	return k
}

// U125 constructs a 1.25 unit wide key (Ctrl, GUI, Alt row)
func U125(opts ...Option) Keycap { return sized("1.25U_", 1.25, opts) }

// U150 constructs a 1.5 unit wide key (Tab, backslash)
func U150(opts ...Option) Keycap { return sized("1.5U_", 1.5, opts) }

// U175 constructs a 1.75 unit wide key (Caps Lock)
func U175(opts ...Option) Keycap { return sized("1.75U_", 1.75, opts) }

// U200 constructs a 2 unit wide key (Backspace, numpad 0)
func U200(opts ...Option) Keycap { return sized("2U_", 2, opts) }

// U225 constructs a 2.25 unit wide key (Enter, left Shift)
func U225(opts ...Option) Keycap { return sized("2.25U_", 2.25, opts) }

// U250 constructs a 2.5 unit wide key
func U250(opts ...Option) Keycap { return sized("2.5U_", 2.5, opts) }

// U275 constructs a 2.75 unit wide key (right Shift)
func U275(opts ...Option) Keycap { return sized("2.75U_", 2.75, opts) }

// U625 constructs a 6.25 unit spacebar
func U625(opts ...Option) Keycap { return sized("6.25U_", 6.25, opts) }

// U700 constructs a 7 unit spacebar
func U700(opts ...Option) Keycap { return sized("7U_", 7, opts) }

// U200Vertical constructs a 2 unit tall key (numpad +, numpad Enter):
// 1U long, stretched along Y instead of X.
func U200Vertical(opts ...Option) Keycap {
	preset := []Option{
		WithLength(KeyUnit - BetweenSpace),
		WithWidth(KeyUnit*2 - BetweenSpace),
	}
	k := Alphas(append(preset, opts...)...)
	k.Name = prefixName(k.Name, "2UV_")
	return k
}

// prefixName prepends tag unless name already carries it. Callers that
// constructed with an explicitly empty name get just the tag back.
func prefixName(name, tag string) string {
	if strings.HasPrefix(name, tag) {
		return name
	}
	return tag + name
}
