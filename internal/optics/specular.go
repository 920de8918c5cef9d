package optics

import "math"

// Shininess mapping bounds: a perfectly smooth surface maps to 2^11 = 2048,
// a fully rough one to 2^1 = 2. The exponential mapping is monotone and
// close to perceptually linear in roughness.
const (
	shininessMaxExp = 11.0
	shininessMinExp = 1.0
)

// ShininessFromRoughness converts a [0,1] roughness to a Blinn-Phong
// shininess exponent. Higher roughness always yields lower shininess.
func ShininessFromRoughness(roughness float64) float64 {
	if roughness < 0 {
		roughness = 0
	}
	if roughness > 1 {
		roughness = 1
	}
	exp := shininessMaxExp - (shininessMaxExp-shininessMinExp)*roughness
	return math.Pow(2, exp)
}

// BlinnPhongSpecular returns the specular term max(0, N.H)^shininess for a
// precomputed half-vector cosine.
func BlinnPhongSpecular(nDotH, shininess float64) float64 {
	if nDotH <= 0 {
		return 0
	}
	if nDotH > 1 {
		nDotH = 1
	}
	return math.Pow(nDotH, shininess)
}

// HalfVectorCosine computes N.H for light and view directions expressed as
// cosines against the surface normal, assuming both lie in the same plane
// of incidence. The half vector bisects the two directions, so its angle
// from the normal is the mean of the two.
func HalfVectorCosine(cosLight, cosView float64) float64 {
	thetaL := math.Acos(clampCos(cosLight))
	thetaV := math.Acos(clampCos(cosView))
	return math.Cos((thetaL + thetaV) / 2)
}
