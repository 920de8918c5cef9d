package contrast

import (
	"math"

	"github.com/jmylchreest/lustre/internal/colour"
)

// APCA constants (SAPC/APCA 0.0.98G-4g). The luminance coefficients carry
// more digits than the WCAG set; both are correct per their respective
// specs and are deliberately kept separate.
const (
	apcaCoefR = 0.2126729
	apcaCoefG = 0.7151522
	apcaCoefB = 0.0721750

	// Simple 2.4 power curve estimates screen luminance for this metric
	// (distinct from the piecewise sRGB transfer function).
	apcaGamma = 2.4

	// Near-black soft clamp: luminance below the threshold is boosted, not
	// clamped down, modelling flare on dark displays.
	apcaBlackThreshold = 0.022
	apcaBlackExponent  = 1.414

	// Contrast exponents depend on which side is lighter.
	apcaNormBG  = 0.56
	apcaNormTXT = 0.57
	apcaRevBG   = 0.65
	apcaRevTXT  = 0.62

	// Output scaling and clipping.
	apcaScale     = 1.14
	apcaLoClip    = 0.1
	apcaLoOffset  = 0.027
	apcaMinDeltaY = 0.0005
)

// apcaLuminance estimates the screen luminance of a colour using the APCA
// coefficients and power curve.
func apcaLuminance(c colour.Colour) float64 {
	r := math.Pow(float64(c.R)/255, apcaGamma)
	g := math.Pow(float64(c.G)/255, apcaGamma)
	b := math.Pow(float64(c.B)/255, apcaGamma)
	return apcaCoefR*r + apcaCoefG*g + apcaCoefB*b
}

// softClampBlack boosts very dark luminances above the flare floor.
func softClampBlack(y float64) float64 {
	if y < apcaBlackThreshold {
		return y + math.Pow(apcaBlackThreshold-y, apcaBlackExponent)
	}
	return y
}

// APCAEvaluate computes the signed APCA lightness contrast Lc between a
// text (foreground) colour and its background. Positive values mean dark
// text on a light background, negative values light text on a dark
// background; the magnitude ranges up to ~106 (dark-on-light) and ~108
// (light-on-dark). Results with insufficient contrast are clipped to zero
// with PolarityNone.
func APCAEvaluate(fg, bg colour.Colour) Result {
	ytxt := softClampBlack(apcaLuminance(fg))
	ybg := softClampBlack(apcaLuminance(bg))

	// Degenerate pairs produce no usable contrast.
	if math.Abs(ybg-ytxt) < apcaMinDeltaY {
		return Result{Value: 0, Polarity: PolarityNone}
	}

	if ybg > ytxt {
		// Normal polarity: dark text on light background.
		sapc := (math.Pow(ybg, apcaNormBG) - math.Pow(ytxt, apcaNormTXT)) * apcaScale
		if sapc < apcaLoClip {
			return Result{Value: 0, Polarity: PolarityNone}
		}
		return Result{Value: (sapc - apcaLoOffset) * 100, Polarity: PolarityDarkOnLight}
	}

	// Reverse polarity: light text on dark background.
	sapc := (math.Pow(ybg, apcaRevBG) - math.Pow(ytxt, apcaRevTXT)) * apcaScale
	if sapc > -apcaLoClip {
		return Result{Value: 0, Polarity: PolarityNone}
	}
	return Result{Value: (sapc + apcaLoOffset) * 100, Polarity: PolarityLightOnDark}
}

// APCAEvaluateBatch evaluates equal-length foreground/background slices
// element-wise. Returns a ValidationError if the lengths differ.
func APCAEvaluateBatch(fgs, bgs []colour.Colour) ([]Result, error) {
	if len(fgs) != len(bgs) {
		return nil, colour.NewValidationError("batch",
			"foreground and background lengths differ: %d vs %d", len(fgs), len(bgs))
	}
	results := make([]Result, len(fgs))
	for i := range fgs {
		results[i] = APCAEvaluate(fgs[i], bgs[i])
	}
	return results, nil
}
