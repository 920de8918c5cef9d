package colour

import "math"

// HCT is the tone-based colour space: Hue and Chroma come from the CAM16
// appearance model under standard viewing conditions, and Tone is the CIE
// L* lightness of the colour (0-100). Tone is independent of hue and
// chroma: changing one does not perturb the others beyond float tolerance.
type HCT struct {
	Hue    float64 // degrees, [0,360)
	Chroma float64 // >= 0; the in-gamut maximum depends on hue and tone
	Tone   float64 // CIE L*, [0,100]
}

// CIE L* piecewise constants: the cubic branch applies above L* = 8
// (Y/Yn > 216/24389), the linear branch below it.
const (
	lstarKappa   = 903.3
	lstarEpsilon = 216.0 / 24389.0
)

// lstarFromY converts relative luminance Y in [0,100] to CIE L*.
func lstarFromY(y float64) float64 {
	yn := y / 100
	if yn <= lstarEpsilon {
		return lstarKappa * yn
	}
	return 116*math.Cbrt(yn) - 16
}

// yFromLstar converts CIE L* to relative luminance Y in [0,100].
// Exact inverse of lstarFromY.
func yFromLstar(lstar float64) float64 {
	if lstar <= lstarKappa*lstarEpsilon {
		return lstar / lstarKappa * 100
	}
	ft := (lstar + 16) / 116
	return ft * ft * ft * 100
}

// ToHCT converts a colour to the tone space under standard viewing
// conditions.
func ToHCT(c Colour) HCT {
	cam := ToCAM(c, StandardViewing())
	return HCT{
		Hue:    cam.H,
		Chroma: cam.C,
		Tone:   lstarFromY(100 * c.RelativeLuminance()),
	}
}

// Fixed iteration budgets for the tone solvers. Both bisections halve their
// interval every step, so 50 iterations reach ~1e-15 relative error in the
// search variable — well below the float64 noise floor of the conversions.
const (
	toneSolveIterations   = 50
	chromaSolveIterations = 50
)

// FromHCT finds the sRGB colour with the requested hue and tone whose
// chroma is as close to the request as the gamut allows. Chroma only ever
// shrinks; hue and tone are honoured within solver tolerance. The solvers
// are deterministic and run a fixed number of iterations.
func FromHCT(h HCT) Colour {
	vc := StandardViewing()

	tone := math.Min(100, math.Max(0, h.Tone))
	hue := math.Mod(h.Hue, 360)
	if hue < 0 {
		hue += 360
	}

	if tone <= 0 {
		return FromRGB(0, 0, 0)
	}
	if tone >= 100 {
		return FromRGB(255, 255, 255)
	}
	if h.Chroma < 1e-4 {
		// Achromatic: grey at the requested tone.
		v := LinearToSRGB(yFromLstar(tone) / 100)
		ch := uint8(clamp01(v)*255 + 0.5)
		return FromRGB(ch, ch, ch)
	}

	targetY := yFromLstar(tone) / 100

	// Outer bisection on CAM16 lightness J: the relative luminance of the
	// solved colour grows monotonically with J, so bisect J until the
	// candidate luminance matches the requested tone.
	lo, hi := 0.0, 100.0
	var r, g, b float64
	for i := 0; i < toneSolveIterations; i++ {
		j := (lo + hi) / 2
		r, g, b = solveChroma(j, h.Chroma, hue, vc)
		if LinearLuminance(r, g, b) < targetY {
			lo = j
		} else {
			hi = j
		}
	}
	return FromLinearRGB(r, g, b)
}

// solveChroma finds the largest chroma not exceeding the request that stays
// inside the sRGB cube at the given lightness and hue, and returns the
// corresponding linear RGB triple. Inner bisection with a fixed budget.
func solveChroma(j, chroma, hue float64, vc ViewingConditions) (float64, float64, float64) {
	r, g, b := camToLinear(j, chroma, hue, vc)
	if inGamut(r, g, b) {
		return clamp01(r), clamp01(g), clamp01(b)
	}

	// Chroma zero is achromatic and in gamut for any valid J.
	lo, hi := 0.0, chroma
	lr, lg, lb := camToLinear(j, 0, hue, vc)
	for i := 0; i < chromaSolveIterations; i++ {
		mid := (lo + hi) / 2
		r, g, b = camToLinear(j, mid, hue, vc)
		if inGamut(r, g, b) {
			lo = mid
			lr, lg, lb = r, g, b
		} else {
			hi = mid
		}
	}
	return clamp01(lr), clamp01(lg), clamp01(lb)
}

// WithHue returns the colour of h with the hue replaced; chroma may shrink
// to stay in gamut.
func (h HCT) WithHue(hue float64) HCT {
	return ToHCT(FromHCT(HCT{Hue: hue, Chroma: h.Chroma, Tone: h.Tone}))
}

// WithChroma returns the colour of h with the chroma replaced, clamped to
// the gamut maximum for the hue and tone.
func (h HCT) WithChroma(chroma float64) HCT {
	return ToHCT(FromHCT(HCT{Hue: h.Hue, Chroma: chroma, Tone: h.Tone}))
}

// WithTone returns the colour of h with the tone replaced; chroma may
// shrink to stay in gamut.
func (h HCT) WithTone(tone float64) HCT {
	return ToHCT(FromHCT(HCT{Hue: h.Hue, Chroma: h.Chroma, Tone: tone}))
}
