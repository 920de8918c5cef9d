package colour

// GamutMode selects the precision of gamut mapping.
type GamutMode int

const (
	// GamutFast trades precision for speed: 15 bisection iterations with a
	// chroma tolerance of 1.5e-5, good enough for interactive paths.
	GamutFast GamutMode = iota

	// GamutPrecise runs 25 bisection iterations with a tolerance of 3e-8,
	// used wherever the result feeds further conversions.
	GamutPrecise
)

const (
	gamutFastIterations    = 15
	gamutFastTolerance     = 1.5e-5
	gamutPreciseIterations = 25
	gamutPreciseTolerance  = 3e-8

	// Slack on the cube test absorbs float rounding in the matrix round
	// trip so that colours exactly on the gamut boundary are accepted.
	gamutEpsilon = 1e-9
)

// inGamut reports whether the linear triple lies inside the sRGB cube.
func inGamut(r, g, b float64) bool {
	const lo, hi = -gamutEpsilon, 1 + gamutEpsilon
	return r >= lo && r <= hi && g >= lo && g <= hi && b >= lo && b <= hi
}

// MapToGamut reduces the chroma of o, holding lightness and hue fixed,
// until the colour lies inside the sRGB cube. Chroma only ever decreases;
// in-gamut inputs are returned unchanged. The bisection is monotone and
// runs a fixed number of iterations per mode.
func MapToGamut(o OKLCH, mode GamutMode) OKLCH {
	iterations, tolerance := gamutPreciseIterations, gamutPreciseTolerance
	if mode == GamutFast {
		iterations, tolerance = gamutFastIterations, gamutFastTolerance
	}

	if o.C <= 0 {
		o.C = 0
		return o
	}
	if r, g, b := o.linear(); inGamut(r, g, b) {
		return o
	}

	// Zero chroma is achromatic and always representable for L in [0,1],
	// so the lower bound is guaranteed in gamut.
	lo, hi := 0.0, o.C
	for i := 0; i < iterations && hi-lo > tolerance; i++ {
		mid := (lo + hi) / 2
		if r, g, b := (OKLCH{L: o.L, C: mid, H: o.H}).linear(); inGamut(r, g, b) {
			lo = mid
		} else {
			hi = mid
		}
	}
	o.C = lo
	return o
}
