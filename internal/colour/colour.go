// Package colour implements the colour-space engine: sRGB with cached
// linearisation, OKLab/OKLCH, a CAM16 appearance model, and the HCT tone
// space built on top of it. All types are immutable values; every transform
// returns a new value.
package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// Colour is an 8-bit sRGB colour with an alpha in [0,1]. The linear-light
// RGB triple is derived once at construction and never mutated.
type Colour struct {
	R, G, B uint8
	Alpha   float64

	linR, linG, linB float64
}

// FromRGB creates a fully opaque Colour from 8-bit sRGB channels.
func FromRGB(r, g, b uint8) Colour {
	return Colour{
		R:     r,
		G:     g,
		B:     b,
		Alpha: 1,
		linR:  SRGBToLinear(float64(r) / 255),
		linG:  SRGBToLinear(float64(g) / 255),
		linB:  SRGBToLinear(float64(b) / 255),
	}
}

// FromRGBA creates a Colour with an explicit alpha.
// Returns a ValidationError if alpha is outside [0,1].
func FromRGBA(r, g, b uint8, alpha float64) (Colour, error) {
	if alpha < 0 || alpha > 1 {
		return Colour{}, NewValidationError("alpha", "must be in [0,1], got %g", alpha)
	}
	c := FromRGB(r, g, b)
	c.Alpha = alpha
	return c, nil
}

// FromHex parses a hex colour string. Accepted forms are #RGB, #RRGGBB and
// #RRGGBBAA (leading '#' optional, case insensitive).
func FromHex(s string) (Colour, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(h) {
	case 3:
		var buf strings.Builder
		for _, r := range h {
			buf.WriteRune(r)
			buf.WriteRune(r)
		}
		h = buf.String()
	case 6, 8:
		// Parsed below.
	default:
		return Colour{}, NewValidationError("hex", "%q has invalid length %d", s, len(h))
	}

	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return Colour{}, NewValidationError("hex", "%q is not a hex colour", s)
	}

	if len(h) == 8 {
		c := FromRGB(uint8(v>>24), uint8(v>>16), uint8(v>>8))
		c.Alpha = float64(uint8(v)) / 255
		return c, nil
	}
	return FromRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// FromLinearRGB builds a Colour from linear-light RGB channels, clamping
// to the sRGB cube and quantising to 8 bits. The cached linear triple is
// recomputed from the quantised channels so the construction invariant
// always holds.
func FromLinearRGB(r, g, b float64) Colour {
	return FromRGB(
		uint8(clamp01(LinearToSRGB(clamp01(r)))*255+0.5),
		uint8(clamp01(LinearToSRGB(clamp01(g)))*255+0.5),
		uint8(clamp01(LinearToSRGB(clamp01(b)))*255+0.5),
	)
}

// Linear returns the cached linear-light RGB triple.
func (c Colour) Linear() (r, g, b float64) {
	return c.linR, c.linG, c.linB
}

// RelativeLuminance returns the WCAG relative luminance Y in [0,1].
func (c Colour) RelativeLuminance() float64 {
	return LinearLuminance(c.linR, c.linG, c.linB)
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
// Alpha is appended only when it is not fully opaque.
func (c Colour) Hex() string {
	if c.Alpha < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, uint8(c.Alpha*255+0.5))
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the colour in rgb()/rgba() notation.
func (c Colour) String() string {
	if c.Alpha < 1 {
		return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", c.R, c.G, c.B, c.Alpha)
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// WithAlpha returns a copy of the colour with the given alpha, clamped
// to [0,1].
func (c Colour) WithAlpha(alpha float64) Colour {
	c.Alpha = clamp01(alpha)
	return c
}

// Lighten returns a new colour with OKLCH lightness increased by amount
// (0-1 scale), gamut mapped back into sRGB.
func (c Colour) Lighten(amount float64) Colour {
	o := ToOKLCH(c)
	o.L = clamp01(o.L + amount)
	return FromOKLCH(o).WithAlpha(c.Alpha)
}

// Darken returns a new colour with OKLCH lightness decreased by amount.
func (c Colour) Darken(amount float64) Colour {
	return c.Lighten(-amount)
}

// Saturate returns a new colour with OKLCH chroma scaled by factor.
// factor < 1 mutes the colour, factor > 1 makes it more vivid; the result
// is gamut mapped so it always remains displayable.
func (c Colour) Saturate(factor float64) Colour {
	if factor < 0 {
		factor = 0
	}
	o := ToOKLCH(c)
	o.C *= factor
	return FromOKLCH(o).WithAlpha(c.Alpha)
}
