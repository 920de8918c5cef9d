package colour

import (
	"fmt"
	"math"
)

// OKLCH is the cylindrical form of OKLab: perceptual lightness L in [0,1],
// chroma C >= 0 (practically below ~0.4 for sRGB) and hue H in degrees
// [0,360). Construct via ToOKLCH or conversion functions; hand-built values
// with out-of-range components should go through MapToGamut before display.
// https://bottosson.github.io/posts/oklab/
type OKLCH struct {
	L, C, H float64
}

// OKLab matrices from Björn Ottosson's reference implementation.
// Linear sRGB -> approximate cone responses (LMS).
var oklabM1 = [3][3]float64{
	{0.4122214708, 0.5363325363, 0.0514459929},
	{0.2119034982, 0.6806995451, 0.1073969566},
	{0.0883024619, 0.2817188376, 0.6299787005},
}

// Cube-rooted LMS -> Lab.
var oklabM2 = [3][3]float64{
	{0.2104542553, 0.7936177850, -0.0040720468},
	{1.9779984951, -2.4285922050, 0.4505937099},
	{0.0259040371, 0.7827717662, -0.8086757660},
}

// Lab -> cube-rooted LMS (exact inverse of oklabM2).
var oklabM2Inv = [3][3]float64{
	{1, 0.3963377774, 0.2158037573},
	{1, -0.1055613458, -0.0638541728},
	{1, -0.0894841775, -1.2914855480},
}

// LMS -> linear sRGB (exact inverse of oklabM1).
var oklabM1Inv = [3][3]float64{
	{4.0767416621, -3.3077115913, 0.2309699292},
	{-1.2684380046, 2.6097574011, -0.3413193965},
	{-0.0041960863, -0.7034186147, 1.7076147010},
}

func mulMat3(m [3][3]float64, x, y, z float64) (a, b, c float64) {
	a = m[0][0]*x + m[0][1]*y + m[0][2]*z
	b = m[1][0]*x + m[1][1]*y + m[1][2]*z
	c = m[2][0]*x + m[2][1]*y + m[2][2]*z
	return a, b, c
}

// cbrt is a sign-preserving cube root.
func cbrt(v float64) float64 {
	return math.Cbrt(v)
}

// linearToOKLab converts linear sRGB channels to OKLab coordinates.
func linearToOKLab(r, g, b float64) (lum, aa, bb float64) {
	l, m, s := mulMat3(oklabM1, r, g, b)
	return mulMat3(oklabM2, cbrt(l), cbrt(m), cbrt(s))
}

// oklabToLinear converts OKLab coordinates back to linear sRGB. The result
// may lie outside [0,1] for out-of-gamut inputs; see MapToGamut.
func oklabToLinear(lum, aa, bb float64) (r, g, b float64) {
	l, m, s := mulMat3(oklabM2Inv, lum, aa, bb)
	return mulMat3(oklabM1Inv, l*l*l, m*m*m, s*s*s)
}

// ToOKLCH converts a colour to its OKLCH representation.
func ToOKLCH(c Colour) OKLCH {
	lum, aa, bb := linearToOKLab(c.Linear())
	chroma := math.Sqrt(aa*aa + bb*bb)
	hue := math.Atan2(bb, aa) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	return OKLCH{L: lum, C: chroma, H: hue}
}

// FromOKLCH converts an OKLCH value back to an sRGB colour. Out-of-gamut
// values are gamut mapped (precise mode) before quantisation, so lightness
// and hue are preserved and only chroma is reduced.
func FromOKLCH(o OKLCH) Colour {
	o = MapToGamut(o, GamutPrecise)
	r, g, b := oklabToLinear(o.lab())
	return FromLinearRGB(r, g, b)
}

// lab returns the Cartesian OKLab coordinates of the OKLCH value.
func (o OKLCH) lab() (lum, aa, bb float64) {
	h := o.H * math.Pi / 180
	return o.L, o.C * math.Cos(h), o.C * math.Sin(h)
}

// linear returns the (possibly out-of-gamut) linear sRGB triple.
func (o OKLCH) linear() (r, g, b float64) {
	return oklabToLinear(o.lab())
}

// String formats the value in CSS oklch() notation.
func (o OKLCH) String() string {
	return fmt.Sprintf("oklch(%.4f %.4f %.2f)", o.L, o.C, o.H)
}
