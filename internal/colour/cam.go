package colour

import "math"

// CAM holds the CAM16 appearance correlates of a colour under explicit
// viewing conditions: lightness J, chroma C, hue h (degrees), brightness Q,
// colourfulness M and saturation S. Correlates are only meaningful together
// with the ViewingConditions they were derived under; construct via ToCAM.
type CAM struct {
	J, C, H, Q, M, S float64
}

// D65 reference white in XYZ, Y normalised to 100.
var whiteD65 = [3]float64{95.047, 100.0, 108.883}

// Linear sRGB -> XYZ (D65), scaled so that white maps to Y = 100.
var srgbToXYZ = [3][3]float64{
	{0.41233895, 0.35762064, 0.18051042},
	{0.2126, 0.7152, 0.0722},
	{0.01932141, 0.11916382, 0.95034478},
}

// XYZ -> linear sRGB, inverse of srgbToXYZ.
var xyzToSRGB = [3][3]float64{
	{3.2413774792388685, -1.5376652402851851, -0.49885366846268053},
	{-0.9691452513005321, 1.8758853451067872, 0.04156585616912061},
	{0.05562093689691305, -0.20395524564742123, 1.0571799111220335},
}

// CAM16 chromatic adaptation matrix (XYZ -> cone-like responses).
var xyzToCone = [3][3]float64{
	{0.401288, 0.650173, -0.051461},
	{-0.250268, 1.204414, 0.045854},
	{-0.002079, 0.048952, 0.953127},
}

// Inverse of xyzToCone.
var coneToXYZ = [3][3]float64{
	{1.8620678550872327, -1.0112546305316843, 0.14918677544445175},
	{0.38752654323613717, 0.6214474419314753, -0.008973985167612518},
	{-0.015841498849333856, -0.03412293802851557, 1.0499644368778496},
}

// camOffset is the achromatic-response offset. It is subtracted when the
// achromatic response is computed on the forward path and must be re-added
// on the inverse path; dropping it breaks the round trip.
const camOffset = 0.305

// ViewingConditions captures the environment a colour is perceived in and
// precomputes the CAM16 adaptation factors derived from it.
type ViewingConditions struct {
	// AdaptingLuminance is L_A in cd/m², the luminance the eye is adapted to.
	AdaptingLuminance float64

	// BackgroundLstar is the L* of the background the colour sits on.
	BackgroundLstar float64

	// Surround ranges 0 (dark) to 2 (average).
	Surround float64

	// Derived adaptation factors.
	n, z, fl, flRoot  float64
	nbb, ncb, c, nc   float64
	aw                float64
	rgbD              [3]float64
}

// stdViewing is computed once at package init; the struct is immutable and
// shared read-only afterwards.
var stdViewing = NewViewingConditions(200/math.Pi*yFromLstar(50)/100, 50, 2)

// StandardViewing returns the viewing conditions the model defaults to:
// D65 white, ~11.7 cd/m² adapting luminance (200 lux), an L*=50 grey
// background and an average surround.
func StandardViewing() ViewingConditions {
	return stdViewing
}

// NewViewingConditions derives the full set of CAM16 adaptation factors
// from the three free parameters. Surround is clamped to [0,2].
func NewViewingConditions(adaptingLuminance, backgroundLstar, surround float64) ViewingConditions {
	vc := ViewingConditions{
		AdaptingLuminance: math.Max(0.1, adaptingLuminance),
		BackgroundLstar:   math.Max(0.1, backgroundLstar),
		Surround:          math.Min(2, math.Max(0, surround)),
	}

	// Cone responses to the white point.
	rW, gW, bW := mulMat3(xyzToCone, whiteD65[0], whiteD65[1], whiteD65[2])

	f := 0.8 + vc.Surround/10
	if f >= 0.9 {
		vc.c = lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vc.c = lerp(0.525, 0.59, (f-0.8)*10)
	}
	vc.nc = f

	// Degree of adaptation to the illuminant.
	d := f * (1 - (1/3.6)*math.Exp((-vc.AdaptingLuminance-42)/92))
	d = math.Min(1, math.Max(0, d))
	vc.rgbD = [3]float64{
		d*(100/rW) + 1 - d,
		d*(100/gW) + 1 - d,
		d*(100/bW) + 1 - d,
	}

	// Luminance-level adaptation factor (Hunt-Li-Luo).
	k := 1 / (5*vc.AdaptingLuminance + 1)
	k4 := k * k * k * k
	vc.fl = k4*vc.AdaptingLuminance +
		0.1*(1-k4)*(1-k4)*math.Cbrt(5*vc.AdaptingLuminance)
	vc.flRoot = math.Pow(vc.fl, 0.25)

	// Background induction factors and base exponent.
	vc.n = yFromLstar(vc.BackgroundLstar) / whiteD65[1]
	vc.z = 1.48 + 0.29*math.Sqrt(vc.n)
	vc.nbb = 0.725 / math.Pow(vc.n, 0.2)
	vc.ncb = vc.nbb

	// Achromatic response to the white point.
	rA := adapt(rW*vc.rgbD[0], vc.fl)
	gA := adapt(gW*vc.rgbD[1], vc.fl)
	bA := adapt(bW*vc.rgbD[2], vc.fl)
	vc.aw = (2*rA + gA + 0.05*bA - camOffset) * vc.nbb

	return vc
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// adapt applies the CAM16 post-adaptation nonlinearity to a cone response.
func adapt(component, fl float64) float64 {
	af := math.Pow(math.Abs(component)*fl/100, 0.42)
	return signum(component) * 400 * af / (af + 27.13)
}

// unadapt inverts adapt for responses in (-400, 400).
func unadapt(component, fl float64) float64 {
	abs := math.Abs(component)
	base := math.Max(0, 27.13*abs/(400-abs))
	return signum(component) * (100 / fl) * math.Pow(base, 1/0.42)
}

func signum(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// ToCAM computes the CAM16 correlates of a colour under the given viewing
// conditions.
func ToCAM(col Colour, vc ViewingConditions) CAM {
	lr, lg, lb := col.Linear()
	x, y, z := mulMat3(srgbToXYZ, lr, lg, lb)
	x, y, z = x*100, y*100, z*100

	rc, gc, bc := mulMat3(xyzToCone, x, y, z)
	rA := adapt(rc*vc.rgbD[0], vc.fl)
	gA := adapt(gc*vc.rgbD[1], vc.fl)
	bA := adapt(bc*vc.rgbD[2], vc.fl)

	// Opponent dimensions: redness-greenness and yellowness-blueness.
	a := (11*rA - 12*gA + bA) / 11
	b := (rA + gA - 2*bA) / 9

	hRad := math.Atan2(b, a)
	h := hRad * 180 / math.Pi
	if h < 0 {
		h += 360
	}

	// Achromatic response; the offset is restored on the inverse path.
	ac := (2*rA + gA + 0.05*bA - camOffset) * vc.nbb

	j := 100 * math.Pow(ac/vc.aw, vc.c*vc.z)
	q := (4 / vc.c) * math.Sqrt(j/100) * (vc.aw + 4) * vc.flRoot

	et := 0.25 * (math.Cos(hRad+2) + 3.8)
	t := (50000.0 / 13) * vc.nc * vc.ncb * et * math.Sqrt(a*a+b*b) /
		(rA + gA + 1.05*bA + camOffset)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vc.n), 0.73)

	c := alpha * math.Sqrt(j/100)
	m := c * vc.flRoot
	s := 0.0
	if q > 0 {
		s = 100 * math.Sqrt(m/q)
	}

	return CAM{J: j, C: c, H: h, Q: q, M: m, S: s}
}

// FromCAM inverts the appearance model: given lightness J, chroma C and hue
// h under the viewing conditions, it reconstructs the colour. Exact inverse
// of ToCAM for in-gamut colours.
func FromCAM(cam CAM, vc ViewingConditions) Colour {
	r, g, b := camToLinear(cam.J, cam.C, cam.H, vc)
	return FromLinearRGB(r, g, b)
}

// camToLinear is the inverse transform kept in linear RGB, used by the tone
// space solvers to test gamut membership before quantising.
func camToLinear(j, c, h float64, vc ViewingConditions) (float64, float64, float64) {
	if j <= 0 {
		return 0, 0, 0
	}

	alpha := 0.0
	if c > 0 {
		alpha = c / math.Sqrt(j/100)
	}
	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vc.n), 0.73), 1/0.9)

	hRad := h * math.Pi / 180
	et := 0.25 * (math.Cos(hRad+2) + 3.8)

	ac := vc.aw * math.Pow(j/100, 1/(vc.c*vc.z))
	p2 := ac/vc.nbb + camOffset

	var a, b float64
	if t > 0 {
		p1 := (50000.0 / 13) * vc.nc * vc.ncb * et
		gamma := 23 * p2 * t / (23*p1 + 11*t*math.Cos(hRad) + 108*t*math.Sin(hRad))
		a = gamma * math.Cos(hRad)
		b = gamma * math.Sin(hRad)
	}

	rA := (460*p2 + 451*a + 288*b) / 1403
	gA := (460*p2 - 891*a - 261*b) / 1403
	bA := (460*p2 - 220*a - 6300*b) / 1403

	rc := unadapt(rA, vc.fl) / vc.rgbD[0]
	gc := unadapt(gA, vc.fl) / vc.rgbD[1]
	bc := unadapt(bA, vc.fl) / vc.rgbD[2]

	x, y, z := mulMat3(coneToXYZ, rc, gc, bc)
	lr, lg, lb := mulMat3(xyzToSRGB, x/100, y/100, z/100)
	return lr, lg, lb
}
