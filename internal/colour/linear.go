package colour

import "math"

// sRGB piecewise transfer function constants per IEC 61966-2-1.
// The forward and inverse thresholds are mutually consistent at the
// breakpoint: 0.0031308 * 12.92 = 0.04045 within float rounding error.
const (
	srgbLinearThreshold = 0.04045
	linearSRGBThreshold = 0.0031308
	srgbLinearSlope     = 12.92
	srgbGamma           = 2.4
	srgbOffset          = 0.055
)

// SRGBToLinear converts a gamma-encoded sRGB channel in [0,1] to its
// linear-light value. https://www.w3.org/TR/WCAG21/#dfn-relative-luminance.
func SRGBToLinear(c float64) float64 {
	if c <= srgbLinearThreshold {
		return c / srgbLinearSlope
	}
	return math.Pow((c+srgbOffset)/(1+srgbOffset), srgbGamma)
}

// LinearToSRGB converts a linear-light channel in [0,1] back to its
// gamma-encoded sRGB value. Exact inverse of SRGBToLinear.
func LinearToSRGB(c float64) float64 {
	if c <= linearSRGBThreshold {
		return c * srgbLinearSlope
	}
	return (1+srgbOffset)*math.Pow(c, 1/srgbGamma) - srgbOffset
}

// Relative luminance coefficients for linear sRGB per WCAG 2.x.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// LinearLuminance computes the relative luminance Y of a linear RGB triple.
// Returns a value between 0 (darkest) and 1 (lightest).
func LinearLuminance(r, g, b float64) float64 {
	return lumR*r + lumG*g + lumB*b
}

// clamp01 clamps v to the closed interval [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
