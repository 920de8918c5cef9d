package optics

import (
	"math"
	"sync"
)

// Attenuation returns the Beer-Lambert transmitted fraction
// exp(-absorption*distance). Negative products are treated as zero optical
// depth (full transmission).
func Attenuation(absorption, distance float64) float64 {
	od := absorption * distance
	if od <= 0 {
		return 1
	}
	return math.Exp(-od)
}

// Beer-Lambert lookup table: exp(-od) sampled uniformly over optical depth
// [0, beerTableMax]. Linear interpolation on this grid keeps the error
// below 0.002% absolute, well inside the 1% budget; larger depths are
// effectively opaque and return the table floor.
const (
	beerTableSize = 2048
	beerTableMax  = 16.0
)

var (
	beerOnce  sync.Once
	beerTable []float64
)

func beerInit() {
	beerTable = make([]float64, beerTableSize+1)
	for i := range beerTable {
		od := float64(i) / beerTableSize * beerTableMax
		beerTable[i] = math.Exp(-od)
	}
}

// AttenuationFast is the lookup-table fast path for Attenuation, intended
// for hot per-frame evaluation. Shares one immutable table across the
// process.
func AttenuationFast(absorption, distance float64) float64 {
	od := absorption * distance
	if od <= 0 {
		return 1
	}
	beerOnce.Do(beerInit)
	if od >= beerTableMax {
		return beerTable[beerTableSize]
	}
	pos := od / beerTableMax * beerTableSize
	i := int(pos)
	frac := pos - float64(i)
	return beerTable[i] + (beerTable[i+1]-beerTable[i])*frac
}
