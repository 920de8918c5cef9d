// Package optics implements the physical primitives behind the glass
// material model: Fresnel reflectance, Beer-Lambert attenuation,
// Blinn-Phong specular highlights and thin-film interference. All
// functions are pure; the only shared state is a pair of immutable lookup
// tables built once behind an initialisation guard.
package optics

import (
	"math"
	"sync"
)

// Reflectance0 returns the Fresnel reflectance at normal incidence for an
// interface between refractive indices n1 and n2.
func Reflectance0(n1, n2 float64) float64 {
	r := (n1 - n2) / (n1 + n2)
	return r * r
}

// SchlickReflectance is the fast single-power-term Fresnel approximation.
// cosI is the cosine of the incidence angle measured from the surface
// normal, clamped to [0,1].
func SchlickReflectance(n1, n2, cosI float64) float64 {
	r0 := Reflectance0(n1, n2)
	return r0 + (1-r0)*schlickWeight(clampCos(cosI))
}

// FresnelReflectance is the full unpolarised Fresnel reflectance, averaging
// the s and p polarisations. Returns 1 beyond the critical angle (total
// internal reflection).
func FresnelReflectance(n1, n2, cosI float64) float64 {
	cosI = clampCos(cosI)
	sinI := math.Sqrt(1 - cosI*cosI)
	sinT := n1 / n2 * sinI
	if sinT >= 1 {
		return 1
	}
	cosT := math.Sqrt(1 - sinT*sinT)

	rs := (n1*cosI - n2*cosT) / (n1*cosI + n2*cosT)
	rp := (n1*cosT - n2*cosI) / (n1*cosT + n2*cosI)
	return (rs*rs + rp*rp) / 2
}

// BrewsterAngle returns the angle (radians, from the normal) at which the
// p polarisation vanishes for light travelling from n1 into n2.
func BrewsterAngle(n1, n2 float64) float64 {
	return math.Atan(n2 / n1)
}

func clampCos(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// Schlick weight lookup table: (1-cos)^5 sampled over cos in [0,1]. The
// weight is material independent, so one table serves every interface.
// Built once, read-only afterwards.
const schlickTableSize = 1024

var (
	schlickOnce  sync.Once
	schlickTable []float64
)

func schlickInit() {
	schlickTable = make([]float64, schlickTableSize+1)
	for i := range schlickTable {
		c := float64(i) / schlickTableSize
		w := 1 - c
		schlickTable[i] = w * w * w * w * w
	}
}

// schlickWeight returns (1-cos)^5 via linear interpolation of the shared
// table. Error is far below the 1% budget of the fast paths.
func schlickWeight(cos float64) float64 {
	schlickOnce.Do(schlickInit)
	pos := cos * schlickTableSize
	i := int(pos)
	if i >= schlickTableSize {
		return schlickTable[schlickTableSize]
	}
	frac := pos - float64(i)
	return schlickTable[i] + (schlickTable[i+1]-schlickTable[i])*frac
}
