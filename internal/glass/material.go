// Package glass models a physically grounded glass-like material and its
// pure evaluation into renderable optical properties. Materials and
// contexts are immutable values; Evaluate is deterministic and safe for
// concurrent use.
package glass

import (
	"github.com/jmylchreest/lustre/internal/colour"
)

// Parameter ranges enforced by Build and the preset constructors.
const (
	MinIOR       = 1.0
	MaxIOR       = 2.5
	MinEdgePower = 1.0
	MaxEdgePower = 4.0
)

// Material describes a pane of glass-like material. Construct via the
// presets or Builder; zero values are not meaningful.
type Material struct {
	// IOR is the index of refraction, [1.0, 2.5].
	IOR float64

	// Roughness of the surface microstructure, [0, 1]. Drives both the
	// scattering radius and the specular lobe width.
	Roughness float64

	// ThicknessMM is the physical pane thickness in millimetres.
	ThicknessMM float64

	// NoiseScale in [0,1] modulates surface non-uniformity.
	NoiseScale float64

	// Tint is the base body tint in OKLCH; transmittance is derived from
	// it via Beer-Lambert absorption.
	Tint colour.OKLCH

	// EdgePower shapes the Fresnel edge-intensity curve, [1.0, 4.0].
	EdgePower float64
}

// neutralTint is a faintly cool near-white body colour shared by the
// clearer presets.
var neutralTint = colour.OKLCH{L: 0.97, C: 0.005, H: 230}

// Clear is thin, smooth, almost untinted glass.
func Clear() Material {
	return Material{IOR: 1.45, Roughness: 0.05, ThicknessMM: 1, NoiseScale: 0,
		Tint: neutralTint, EdgePower: 2}
}

// Regular is the default window-glass preset.
func Regular() Material {
	return Material{IOR: 1.5, Roughness: 0.2, ThicknessMM: 2, NoiseScale: 0.1,
		Tint: neutralTint, EdgePower: 2.5}
}

// Thick is a heavy pane with a visible greenish body tint.
func Thick() Material {
	return Material{IOR: 1.52, Roughness: 0.3, ThicknessMM: 5, NoiseScale: 0.15,
		Tint: colour.OKLCH{L: 0.94, C: 0.02, H: 160}, EdgePower: 3}
}

// Frosted is heavily diffusing sand-blasted glass.
func Frosted() Material {
	return Material{IOR: 1.5, Roughness: 0.6, ThicknessMM: 3, NoiseScale: 0.4,
		Tint: colour.OKLCH{L: 0.96, C: 0.003, H: 230}, EdgePower: 2}
}

// Builder assembles a Material from optional fields over preset defaults.
// The builder itself is an immutable value: every step consumes the
// receiver and returns a new builder, so partially applied builders can be
// reused safely. Terminate with Build.
type Builder struct {
	m Material
}

// NewBuilder starts a builder from the Regular preset.
func NewBuilder() Builder {
	return Builder{m: Regular()}
}

// From starts a builder from an existing material.
func From(m Material) Builder {
	return Builder{m: m}
}

// WithIOR sets the index of refraction.
func (b Builder) WithIOR(ior float64) Builder {
	b.m.IOR = ior
	return b
}

// WithRoughness sets the surface roughness.
func (b Builder) WithRoughness(roughness float64) Builder {
	b.m.Roughness = roughness
	return b
}

// WithThickness sets the pane thickness in millimetres.
func (b Builder) WithThickness(mm float64) Builder {
	b.m.ThicknessMM = mm
	return b
}

// WithNoiseScale sets the surface noise scale.
func (b Builder) WithNoiseScale(scale float64) Builder {
	b.m.NoiseScale = scale
	return b
}

// WithTint sets the body tint.
func (b Builder) WithTint(tint colour.OKLCH) Builder {
	b.m.Tint = tint
	return b
}

// WithEdgePower sets the Fresnel edge-intensity exponent.
func (b Builder) WithEdgePower(power float64) Builder {
	b.m.EdgePower = power
	return b
}

// Build validates the assembled material and returns it. Out-of-range
// parameters yield a ValidationError naming the offending field.
func (b Builder) Build() (Material, error) {
	m := b.m
	switch {
	case m.IOR < MinIOR || m.IOR > MaxIOR:
		return Material{}, colour.NewValidationError("ior",
			"must be in [%g, %g], got %g", MinIOR, MaxIOR, m.IOR)
	case m.Roughness < 0 || m.Roughness > 1:
		return Material{}, colour.NewValidationError("roughness",
			"must be in [0, 1], got %g", m.Roughness)
	case m.ThicknessMM < 0:
		return Material{}, colour.NewValidationError("thickness",
			"must be non-negative, got %g", m.ThicknessMM)
	case m.NoiseScale < 0 || m.NoiseScale > 1:
		return Material{}, colour.NewValidationError("noise scale",
			"must be in [0, 1], got %g", m.NoiseScale)
	case m.EdgePower < MinEdgePower || m.EdgePower > MaxEdgePower:
		return Material{}, colour.NewValidationError("edge power",
			"must be in [%g, %g], got %g", MinEdgePower, MaxEdgePower, m.EdgePower)
	}
	return m, nil
}
