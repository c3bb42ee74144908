// Package catalog holds the fixed, enumerable set of keycap variants the
// driver knows how to render.
//
// The set is built once through explicit preset calls; adding a variant
// means registering it here. Tests that need a substitute catalog build
// one with FromKeycaps instead of mutating process-wide state.
package catalog

import (
	"strings"

	"github.com/fcasco/keycap-playground/errors"
	"github.com/fcasco/keycap-playground/keycap"
)

// Catalog is an ordered, immutable collection of keycap variants
type Catalog struct {
	caps []keycap.Keycap
}

// New builds the standard full-keyboard catalog
func New() *Catalog {
	return FromKeycaps(standardSet()...)
}

// FromKeycaps builds a catalog from an explicit variant list
func FromKeycaps(caps ...keycap.Keycap) *Catalog {
	return &Catalog{caps: caps}
}

// All returns every variant in registration order
func (c *Catalog) All() []keycap.Keycap {
	out := make([]keycap.Keycap, len(c.caps))
	copy(out, c.caps)
	return out
}

// Len returns the number of registered variants
func (c *Catalog) Len() int {
	return len(c.caps)
}

// Find looks up a variant by name, case-insensitively. Wraps
// errors.ErrNotFound when no variant matches.
func (c *Catalog) Find(name string) (keycap.Keycap, error) {
	for _, k := range c.caps {
		if strings.EqualFold(k.Name, name) {
			return k, nil
		}
	}
	return keycap.Keycap{}, errors.NewNotFoundError("no keycap named %q", name)
}

// Names returns every variant name in registration order, for discovery
// and help output.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.caps))
	for i, k := range c.caps {
		names[i] = k.Name
	}
	return names
}

// standardSet enumerates a whole keyboard's worth of keycaps plus a few
// extras: per-size blanks, alphas, the number row, punctuation, the F row,
// modifiers, spacebars, arrows, the nav cluster and numpad.
func standardSet() []keycap.Keycap {
	caps := []keycap.Keycap{
		// Blanks, one per size class
		keycap.Alphas(keycap.WithName("1U_blank")),
		keycap.U125(keycap.WithName("blank")),
		keycap.U150(keycap.WithName("blank")),
		keycap.U175(keycap.WithName("blank")),
		keycap.U200(keycap.WithName("blank")),
		keycap.U200Vertical(keycap.WithName("blank")),
		keycap.U225(keycap.WithName("blank")),
		keycap.U250(keycap.WithName("blank")),
		keycap.U275(keycap.WithName("blank")),
		keycap.U625(keycap.WithName("blank")),
		keycap.U700(keycap.WithName("blank")),
	}

	// Alphas A-Z; names derive from the legend itself
	for ch := 'A'; ch <= 'Z'; ch++ {
		caps = append(caps, keycap.Alphas(keycap.WithLegends(string(ch))))
	}

	// Number row: main, shifted symbol, front F-key legend
	numrow := []struct {
		digit, shifted, fkey string
	}{
		{"1", "!", "F1"},
		{"2", "@", "F2"},
		{"3", "#", "F3"},
		{"4", "$", "F4"},
		{"5", "%", "F5"},
		{"6", "^", "F6"},
		{"7", "&", "F7"},
		{"8", "*", "F8"},
		{"9", "(", "F9"},
		{"0", ")", "F10"},
	}
	for _, row := range numrow {
		caps = append(caps, keycap.Numrow(
			keycap.WithLegends(row.digit, "", row.shifted, row.fkey),
		))
	}

	// Punctuation; explicit names because the legends make poor filenames
	punctuation := []struct {
		name, main, shifted string
	}{
		{"dash", "-", "_"},
		{"equal", "=", "+"},
		{"lbracket", "[", "{"},
		{"rbracket", "]", "}"},
		{"semicolon", ";", ":"},
		{"quote", "'", "\""},
		{"comma", ",", "<"},
		{"dot", ".", ">"},
		{"slash", "/", "?"},
		{"backslash", "\\", "|"},
		{"tilde", "`", "~"},
	}
	for _, p := range punctuation {
		caps = append(caps, keycap.Alphas(
			keycap.WithName(p.name),
			keycap.WithLegends(p.main, "", p.shifted),
		))
	}

	// F row and Esc
	caps = append(caps, keycap.Alphas(
		keycap.WithLegends("Esc"),
		keycap.WithFontSizes(3.5, 4, 4),
	))
	for _, f := range []string{
		"F1", "F2", "F3", "F4", "F5", "F6",
		"F7", "F8", "F9", "F10", "F11", "F12",
	} {
		caps = append(caps, keycap.Alphas(
			keycap.WithLegends(f),
			keycap.WithFontSizes(3.5, 4, 4),
		))
	}

	// Modifiers at their usual widths
	caps = append(caps,
		keycap.U150(keycap.WithLegends("Tab"), keycap.WithFontSizes(3.5, 4, 4)),
		keycap.U175(keycap.WithLegends("Caps Lock"), keycap.WithFontSizes(2.75, 4, 4)),
		keycap.U225(keycap.WithLegends("Shift"), keycap.WithFontSizes(3.5, 4, 4)),
		keycap.U275(keycap.WithLegends("Shift"), keycap.WithFontSizes(3.5, 4, 4)),
		keycap.U225(keycap.WithLegends("Enter"), keycap.WithFontSizes(3.5, 4, 4)),
		keycap.U200(keycap.WithLegends("Backspace"), keycap.WithFontSizes(2.75, 4, 4)),
		keycap.U125(keycap.WithLegends("Ctrl"), keycap.WithFontSizes(3.25, 4, 4)),
		keycap.U125(keycap.WithLegends("Super"), keycap.WithFontSizes(3.25, 4, 4)),
		keycap.U125(keycap.WithLegends("Alt"), keycap.WithFontSizes(3.25, 4, 4)),
		keycap.U125(keycap.WithLegends("Menu"), keycap.WithFontSizes(3.25, 4, 4)),
		keycap.U125(keycap.WithLegends("Fn"), keycap.WithFontSizes(3.25, 4, 4)),
	)

	// Spacebars have no legends
	caps = append(caps,
		keycap.U625(keycap.WithName("space")),
		keycap.U700(keycap.WithName("space")),
	)

	// Arrows; glyph legends, filesystem-safe names
	arrows := []struct{ name, glyph string }{
		{"left", "←"},
		{"right", "→"},
		{"up", "↑"},
		{"down", "↓"},
	}
	for _, a := range arrows {
		caps = append(caps, keycap.Alphas(
			keycap.WithName(a.name),
			keycap.WithLegends(a.glyph),
			keycap.WithFonts("Code2000", "Gotham Rounded:style=Bold", "Arial Black:style=Regular"),
		))
	}

	// Nav cluster
	for _, nav := range []string{"Ins", "Del", "Home", "End", "PgUp", "PgDn"} {
		caps = append(caps, keycap.Alphas(
			keycap.WithLegends(nav),
			keycap.WithFontSizes(3.25, 4, 4),
		))
	}

	// Numpad
	for ch := '0'; ch <= '9'; ch++ {
		opts := []keycap.Option{
			keycap.WithName("numpad" + string(ch)),
			keycap.WithLegends(string(ch)),
		}
		if ch == '0' {
			caps = append(caps, keycap.U200(opts...))
			continue
		}
		caps = append(caps, keycap.Alphas(opts...))
	}
	caps = append(caps,
		keycap.Alphas(keycap.WithName("numpad_dot"), keycap.WithLegends(".")),
		keycap.Alphas(keycap.WithLegends("Num"), keycap.WithFontSizes(3.25, 4, 4)),
		keycap.Alphas(keycap.WithName("numpad_slash"), keycap.WithLegends("/")),
		keycap.Alphas(keycap.WithName("numpad_star"), keycap.WithLegends("*")),
		keycap.Alphas(keycap.WithName("numpad_minus"), keycap.WithLegends("-")),
		keycap.U200Vertical(keycap.WithName("numpad_plus"), keycap.WithLegends("+")),
		keycap.U200Vertical(keycap.WithName("numpad_enter"), keycap.WithLegends("Enter"), keycap.WithFontSizes(3.5, 4, 4)),
	)

	return caps
}
