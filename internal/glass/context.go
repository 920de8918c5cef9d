package glass

import (
	"github.com/jmylchreest/lustre/internal/colour"
)

// Context carries the viewing and lighting environment a material is
// evaluated in. Immutable; construct via DefaultContext or a preset.
type Context struct {
	// Background is the backdrop colour seen through the pane.
	Background colour.Colour

	// ViewAngleDeg is the viewing angle in degrees from the surface
	// normal: 0 looks straight on, values near 90 graze the pane.
	ViewAngleDeg float64

	// Ambient light intensity, [0,1] nominal.
	Ambient float64

	// KeyLight intensity driving the specular highlight, [0,1] nominal.
	KeyLight float64
}

// DefaultContext is a straight-on view over a light neutral backdrop with
// studio-ish lighting.
func DefaultContext() Context {
	return Context{
		Background:   colour.FromRGB(245, 245, 247),
		ViewAngleDeg: 0,
		Ambient:      0.5,
		KeyLight:     0.8,
	}
}

// OverDark is the default view over a dark backdrop.
func OverDark() Context {
	ctx := DefaultContext()
	ctx.Background = colour.FromRGB(18, 18, 22)
	return ctx
}

// Oblique views the pane at 60 degrees, emphasising the Fresnel edge.
func Oblique() Context {
	ctx := DefaultContext()
	ctx.ViewAngleDeg = 60
	return ctx
}

// Dim is a low-light variant with a weak key light.
func Dim() Context {
	ctx := DefaultContext()
	ctx.Ambient = 0.15
	ctx.KeyLight = 0.25
	return ctx
}

// WithBackground returns a copy of the context over a different backdrop.
func (c Context) WithBackground(bg colour.Colour) Context {
	c.Background = bg
	return c
}

// WithViewAngle returns a copy of the context viewed from the given angle
// in degrees.
func (c Context) WithViewAngle(deg float64) Context {
	c.ViewAngleDeg = deg
	return c
}
