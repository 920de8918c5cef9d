package optics

import (
	"math"
	"testing"
)

func TestAttenuation(t *testing.T) {
	tests := []struct {
		name       string
		absorption float64
		distance   float64
		want       float64
	}{
		{"no absorption", 0, 10, 1},
		{"no distance", 2, 0, 1},
		{"unit optical depth", 1, 1, math.Exp(-1)},
		{"deep", 2, 5, math.Exp(-10)},
		{"negative treated as clear", -1, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Attenuation(tt.absorption, tt.distance); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Attenuation(%g, %g) = %g, want %g", tt.absorption, tt.distance, got, tt.want)
			}
		})
	}
}

func TestAttenuationFastWithinBudget(t *testing.T) {
	// The lookup-table fast path must stay within 1% of the exact value
	// over the whole table range.
	for od := 0.0; od <= beerTableMax; od += 0.003 {
		exact := Attenuation(1, od)
		fast := AttenuationFast(1, od)
		if exact > 0 && math.Abs(fast-exact)/exact > 0.01 {
			t.Fatalf("od=%g: fast %g vs exact %g exceeds 1%%", od, fast, exact)
		}
	}
}

func TestAttenuationFastBeyondTable(t *testing.T) {
	// Depths beyond the table are effectively opaque; the fast path clamps
	// to the table floor instead of extrapolating.
	got := AttenuationFast(10, 100)
	if got != math.Exp(-beerTableMax) {
		t.Errorf("deep attenuation = %g, want table floor %g", got, math.Exp(-beerTableMax))
	}
}

func TestAttenuationFastDeterministic(t *testing.T) {
	a := AttenuationFast(0.7, 3.1)
	b := AttenuationFast(0.7, 3.1)
	if a != b {
		t.Errorf("fast path not deterministic: %g vs %g", a, b)
	}
}
