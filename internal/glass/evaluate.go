package glass

import (
	"math"

	"github.com/jmylchreest/lustre/internal/colour"
	"github.com/jmylchreest/lustre/internal/optics"
)

// Evaluated is the fully resolved optical description of a material under
// a specific context, ready for a render backend. Produced only by
// Evaluate; never hand-construct one.
type Evaluated struct {
	// Opacity of the pane over its backdrop, (0,1) for any physical glass.
	Opacity float64

	// FresnelNormal is the reflectance at normal incidence (R0).
	FresnelNormal float64

	// FresnelEdge is the edge-intensity curve evaluated at the context's
	// viewing angle, shaped by the material's edge power.
	FresnelEdge float64

	// Roughness is carried through unchanged for the render backend.
	Roughness float64

	// ScatterRadiusMM is the physically derived radius of the diffusion
	// blur in millimetres (not a cosmetic pixel value).
	ScatterRadiusMM float64

	// SpecularIntensity and Shininess parameterise the Blinn-Phong
	// highlight.
	SpecularIntensity float64
	Shininess         float64

	// Per-channel (linear RGB) coefficients and the resulting transmitted
	// fractions over the pane thickness.
	Absorption    [3]float64 // mm^-1
	Scatter       [3]float64 // mm^-1
	Transmittance [3]float64

	// ThicknessMM is carried through for backends that need it.
	ThicknessMM float64
}

// Absorption is derived from the tint as the coefficient that reproduces
// the tint's transmittance over this reference thickness.
const tintReferenceThicknessMM = 2.0

// Scattering coefficient scale: a fully rough 1mm pane scatters over
// roughly this many inverse millimetres at 550nm.
const scatterCoefficient = 0.12

// Maximum diffusion half-angle (radians) reached at full roughness.
const maxSpreadAngle = math.Pi / 6

// Evaluate resolves a material under a viewing/lighting context. The
// function is pure: identical inputs always produce bit-identical outputs.
func Evaluate(m Material, ctx Context) Evaluated {
	cosV := math.Cos(clamp(ctx.ViewAngleDeg, 0, 89.9) * math.Pi / 180)

	// Fresnel response at the viewing angle and the edge-intensity curve.
	r0 := optics.Reflectance0(1, m.IOR)
	edge := math.Pow(1-cosV, m.EdgePower)
	fresnelEdge := r0 + (1-r0)*edge
	fresnelView := optics.SchlickReflectance(1, m.IOR, cosV)

	// Body absorption from the tint: the coefficient per channel is the
	// one that reproduces the tint at the reference thickness.
	tr, tg, tb := tintLinear(m.Tint)
	absorption := [3]float64{
		absorptionFor(tr),
		absorptionFor(tg),
		absorptionFor(tb),
	}

	// Wavelength-dependent scattering (Rayleigh-like 1/lambda^4 weighting
	// around green) driven by roughness and surface noise.
	scatterBase := scatterCoefficient * m.Roughness * (1 + 0.5*m.NoiseScale)
	scatter := [3]float64{
		scatterBase * rayleigh(optics.WavelengthRed),
		scatterBase * rayleigh(optics.WavelengthGreen),
		scatterBase * rayleigh(optics.WavelengthBlue),
	}

	// Transmitted fraction per channel over the pane thickness: absorption
	// and out-scattering both attenuate the straight-through path.
	var transmittance [3]float64
	for i := range transmittance {
		transmittance[i] = optics.AttenuationFast(absorption[i]+scatter[i], m.ThicknessMM)
	}
	avgT := (transmittance[0] + transmittance[1] + transmittance[2]) / 3

	// Diffusion radius: scattered light spreads over a cone whose half
	// angle grows quadratically with roughness; the radius is the cone's
	// footprint after crossing the pane, widened by refraction.
	spread := m.Roughness * m.Roughness * maxSpreadAngle
	scatterRadius := m.ThicknessMM * math.Tan(spread) * (1 + (m.IOR - 1))

	// Opacity composes the reflected fraction with the non-transmitted
	// body fraction.
	opacity := clamp(fresnelView+(1-fresnelView)*(1-avgT), 0.001, 0.999)

	// Blinn-Phong parameters: the backend evaluates the lobe itself, the
	// evaluator supplies its peak intensity and exponent.
	shininess := optics.ShininessFromRoughness(m.Roughness)
	specular := ctx.KeyLight * fresnelView * (1 - 0.5*m.Roughness)

	return Evaluated{
		Opacity:           opacity,
		FresnelNormal:     r0,
		FresnelEdge:       fresnelEdge,
		Roughness:         m.Roughness,
		ScatterRadiusMM:   scatterRadius,
		SpecularIntensity: specular,
		Shininess:         shininess,
		Absorption:        absorption,
		Scatter:           scatter,
		Transmittance:     transmittance,
		ThicknessMM:       m.ThicknessMM,
	}
}

// tintLinear resolves the material tint to linear RGB, gamut mapped.
func tintLinear(tint colour.OKLCH) (r, g, b float64) {
	c := colour.FromOKLCH(tint)
	return c.Linear()
}

// absorptionFor inverts Beer-Lambert at the reference thickness for one
// channel of the tint. Channels at or above full transmission absorb
// nothing; a floor keeps fully opaque tints finite.
func absorptionFor(channel float64) float64 {
	if channel >= 1 {
		return 0
	}
	if channel < 1e-4 {
		channel = 1e-4
	}
	return -math.Log(channel) / tintReferenceThicknessMM
}

// rayleigh is the 1/lambda^4 scattering weight normalised to 1 at 550nm.
func rayleigh(wavelengthNM float64) float64 {
	ratio := optics.WavelengthGreen / wavelengthNM
	return ratio * ratio * ratio * ratio
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
