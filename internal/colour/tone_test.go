package colour

import (
	"math"
	"testing"
)

func TestLstarPiecewise(t *testing.T) {
	tests := []struct {
		name  string
		y     float64
		wantL float64
	}{
		{"black", 0, 0},
		{"white", 100, 100},
		{"mid grey", yFromLstar(50), 50},
		{"linear branch", 0.5, 903.3 * 0.005},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lstarFromY(tt.y); math.Abs(got-tt.wantL) > 1e-9 {
				t.Errorf("lstarFromY(%g) = %g, want %g", tt.y, got, tt.wantL)
			}
		})
	}

	// The branches must agree at the breakpoint and invert exactly.
	breakY := lstarEpsilon * 100
	if diff := math.Abs(lstarFromY(breakY) - lstarKappa*lstarEpsilon); diff > 1e-9 {
		t.Errorf("branch mismatch at breakpoint: %g", diff)
	}
	for l := 0.0; l <= 100; l += 2.5 {
		if back := lstarFromY(yFromLstar(l)); math.Abs(back-l) > 1e-9 {
			t.Errorf("L* round trip at %g = %g", l, back)
		}
	}
}

func TestToHCTToneMatchesLstar(t *testing.T) {
	for _, c := range []Colour{
		FromRGB(255, 0, 0),
		FromRGB(16, 128, 240),
		FromRGB(200, 200, 200),
	} {
		h := ToHCT(c)
		want := lstarFromY(100 * c.RelativeLuminance())
		if math.Abs(h.Tone-want) > 1e-9 {
			t.Errorf("%s tone = %g, want %g", c.Hex(), h.Tone, want)
		}
	}
}

func TestFromHCTHitsRequestedTone(t *testing.T) {
	tests := []struct {
		name string
		hct  HCT
	}{
		{"blue mid tone", HCT{Hue: 250, Chroma: 40, Tone: 50}},
		{"red dark", HCT{Hue: 27, Chroma: 30, Tone: 30}},
		{"green light", HCT{Hue: 145, Chroma: 25, Tone: 80}},
		{"low chroma", HCT{Hue: 90, Chroma: 4, Tone: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FromHCT(tt.hct)
			got := ToHCT(c)

			// Tone must land within quantisation distance of the request.
			if math.Abs(got.Tone-tt.hct.Tone) > 1 {
				t.Errorf("tone = %g, want %g", got.Tone, tt.hct.Tone)
			}
			// Hue within a few degrees (quantisation shifts it slightly).
			if hueDelta(got.Hue, tt.hct.Hue) > 4 {
				t.Errorf("hue = %g, want %g", got.Hue, tt.hct.Hue)
			}
			// Chroma never exceeds the request by more than rounding noise.
			if got.Chroma > tt.hct.Chroma+2.5 {
				t.Errorf("chroma = %g exceeds requested %g", got.Chroma, tt.hct.Chroma)
			}
		})
	}
}

func hueDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestFromHCTExtremes(t *testing.T) {
	if c := FromHCT(HCT{Hue: 120, Chroma: 50, Tone: 0}); c != FromRGB(0, 0, 0) {
		t.Errorf("tone 0 = %s, want black", c.Hex())
	}
	if c := FromHCT(HCT{Hue: 120, Chroma: 50, Tone: 100}); c != FromRGB(255, 255, 255) {
		t.Errorf("tone 100 = %s, want white", c.Hex())
	}

	grey := FromHCT(HCT{Hue: 200, Chroma: 0, Tone: 50})
	if grey.R != grey.G || grey.G != grey.B {
		t.Errorf("zero chroma should be achromatic, got %s", grey.Hex())
	}
}

func TestToneIndependence(t *testing.T) {
	// Changing hue or chroma must not move the tone beyond solver tolerance.
	base := HCT{Hue: 220, Chroma: 30, Tone: 55}

	for _, hue := range []float64{0, 60, 120, 180, 300} {
		got := base.WithHue(hue)
		if math.Abs(got.Tone-base.Tone) > 1 {
			t.Errorf("WithHue(%g) moved tone to %g", hue, got.Tone)
		}
	}
	for _, chroma := range []float64{0, 10, 20, 60} {
		got := base.WithChroma(chroma)
		if math.Abs(got.Tone-base.Tone) > 1 {
			t.Errorf("WithChroma(%g) moved tone to %g", chroma, got.Tone)
		}
	}
}

func TestFromHCTOutOfGamutChromaClamps(t *testing.T) {
	// Chroma 200 is far outside sRGB for any hue/tone; the solver must
	// clamp to the gamut maximum rather than fail or overflow.
	c := FromHCT(HCT{Hue: 30, Chroma: 200, Tone: 50})
	got := ToHCT(c)
	if got.Chroma > 150 {
		t.Errorf("clamped chroma = %g, want a representable value", got.Chroma)
	}
	if math.Abs(got.Tone-50) > 1 {
		t.Errorf("tone = %g, want ~50", got.Tone)
	}
}

func TestFromHCTDeterministic(t *testing.T) {
	in := HCT{Hue: 312.4, Chroma: 44.1, Tone: 61.7}
	a := FromHCT(in)
	b := FromHCT(in)
	if a != b {
		t.Errorf("solver is not deterministic: %s vs %s", a.Hex(), b.Hex())
	}
}
