// Package render formats evaluated glass materials into textual style
// descriptions for a CSS-like backend. Pure formatting: no physics, no
// randomness; identical inputs always produce identical strings.
package render

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/lustre/internal/colour"
	"github.com/jmylchreest/lustre/internal/glass"
)

// Context describes the viewport the style is rendered into.
type Context struct {
	// ViewportWidth and ViewportHeight in CSS pixels.
	ViewportWidth  int
	ViewportHeight int

	// DevicePixelRatio scales physical sizes to device pixels; 1 is a
	// classic 96dpi display, 2 a typical high-density one.
	DevicePixelRatio float64

	// Backdrop is the colour behind the pane that its transmittance is
	// composited over.
	Backdrop colour.Colour
}

// DefaultRenderContext is a 1280x800 viewport at standard density over a
// light neutral backdrop.
func DefaultRenderContext() Context {
	return Context{
		ViewportWidth:    1280,
		ViewportHeight:   800,
		DevicePixelRatio: 1,
		Backdrop:         colour.FromRGB(245, 245, 247),
	}
}

// CSS reference pixels per millimetre (96 dpi / 25.4 mm per inch).
const pxPerMM = 96.0 / 25.4

// maxBlurViewportFraction caps the blur radius at this share of the
// smaller viewport dimension, so a pane in a tiny viewport is never
// blurred wider than the surface it covers.
const maxBlurViewportFraction = 0.05

// BlurRadiusPx converts the physical scattering radius to a backdrop blur
// radius in device pixels for this context, capped against the viewport.
func (c Context) BlurRadiusPx(ev glass.Evaluated) float64 {
	dpr := c.DevicePixelRatio
	if dpr <= 0 {
		dpr = 1
	}
	radius := ev.ScatterRadiusMM * pxPerMM * dpr
	if minDim := min(c.ViewportWidth, c.ViewportHeight); minDim > 0 {
		if limit := float64(minDim) * dpr * maxBlurViewportFraction; radius > limit {
			radius = limit
		}
	}
	return radius
}

// paneColour composites the backdrop through the pane's per-channel
// transmittance in linear light.
func paneColour(ev glass.Evaluated, backdrop colour.Colour) colour.Colour {
	r, g, b := backdrop.Linear()
	return colour.FromLinearRGB(
		r*ev.Transmittance[0],
		g*ev.Transmittance[1],
		b*ev.Transmittance[2],
	)
}

// Style renders one evaluated material into a textual style description:
// backdrop blur radius, background colour with the pane's opacity, and a
// border whose alpha carries the Fresnel edge glow.
func Style(ev glass.Evaluated, ctx Context) string {
	pane := paneColour(ev, ctx.Backdrop)

	var sb strings.Builder
	fmt.Fprintf(&sb, "backdrop-filter: blur(%.2fpx); ", ctx.BlurRadiusPx(ev))
	fmt.Fprintf(&sb, "background-color: rgba(%d, %d, %d, %.3f); ",
		pane.R, pane.G, pane.B, ev.Opacity)
	fmt.Fprintf(&sb, "border: 1px solid rgba(255, 255, 255, %.3f);",
		clampUnit(ev.FresnelEdge*2))
	return sb.String()
}

// StyleBatch renders a slice of evaluated materials in order.
func StyleBatch(evs []glass.Evaluated, ctx Context) []string {
	out := make([]string, len(evs))
	for i, ev := range evs {
		out[i] = Style(ev, ctx)
	}
	return out
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
