package colour

import (
	"math"
	"testing"
)

func TestOKLCHKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		colour  Colour
		wantL   float64
		wantC   float64
		wantH   float64
		hueTol  float64
	}{
		{
			name:   "pure red",
			colour: FromRGB(255, 0, 0),
			wantL:  0.628,
			wantC:  0.257,
			wantH:  29.2,
			hueTol: 0.5,
		},
		{
			name:   "pure green",
			colour: FromRGB(0, 255, 0),
			wantL:  0.866,
			wantC:  0.295,
			wantH:  142.5,
			hueTol: 1,
		},
		{
			name:   "pure blue",
			colour: FromRGB(0, 0, 255),
			wantL:  0.452,
			wantC:  0.313,
			wantH:  264.1,
			hueTol: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToOKLCH(tt.colour)
			if math.Abs(got.L-tt.wantL) > 0.005 {
				t.Errorf("L = %g, want %g", got.L, tt.wantL)
			}
			if math.Abs(got.C-tt.wantC) > 0.005 {
				t.Errorf("C = %g, want %g", got.C, tt.wantC)
			}
			if math.Abs(got.H-tt.wantH) > tt.hueTol {
				t.Errorf("H = %g, want %g", got.H, tt.wantH)
			}
		})
	}
}

func TestOKLabWhitePoint(t *testing.T) {
	// D65 white (linear 1,1,1) must map to L ~= 1 with a and b achromatic.
	l, a, b := linearToOKLab(1, 1, 1)
	if math.Abs(l-1) > 1e-4 {
		t.Errorf("white L = %g, want ~1", l)
	}
	if math.Abs(a) > 1e-4 || math.Abs(b) > 1e-4 {
		t.Errorf("white (a,b) = (%g,%g), want achromatic", a, b)
	}
}

func TestOKLCHRoundTrip(t *testing.T) {
	// Every in-gamut sRGB colour must survive sRGB -> OKLCH -> sRGB within
	// 2/255 per channel. Step through the cube rather than testing all 16M.
	const step = 17
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				in := FromRGB(uint8(r), uint8(g), uint8(b))
				out := FromOKLCH(ToOKLCH(in))
				if absDiffU8(in.R, out.R) > 2 || absDiffU8(in.G, out.G) > 2 || absDiffU8(in.B, out.B) > 2 {
					t.Fatalf("round trip %s -> %s exceeds 2/255", in.Hex(), out.Hex())
				}
			}
		}
	}
}

func absDiffU8(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func TestMapToGamut(t *testing.T) {
	tests := []struct {
		name string
		in   OKLCH
		mode GamutMode
	}{
		{"vivid red fast", OKLCH{L: 0.63, C: 0.4, H: 29}, GamutFast},
		{"vivid red precise", OKLCH{L: 0.63, C: 0.4, H: 29}, GamutPrecise},
		{"vivid cyan", OKLCH{L: 0.9, C: 0.35, H: 195}, GamutPrecise},
		{"dark magenta", OKLCH{L: 0.3, C: 0.3, H: 328}, GamutPrecise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapToGamut(tt.in, tt.mode)

			if got.C > tt.in.C {
				t.Errorf("chroma increased: %g > %g", got.C, tt.in.C)
			}
			if got.L != tt.in.L {
				t.Errorf("lightness changed: %g != %g", got.L, tt.in.L)
			}
			if got.H != tt.in.H {
				t.Errorf("hue changed: %g != %g", got.H, tt.in.H)
			}
			if r, g, b := got.linear(); !inGamut(r, g, b) {
				t.Errorf("result still out of gamut: (%g,%g,%g)", r, g, b)
			}
		})
	}
}

func TestMapToGamutKeepsInGamutInput(t *testing.T) {
	in := ToOKLCH(FromRGB(120, 84, 200))
	got := MapToGamut(in, GamutPrecise)
	if got != in {
		t.Errorf("in-gamut input changed: %+v -> %+v", in, got)
	}
}

func TestMapToGamutAchromatic(t *testing.T) {
	got := MapToGamut(OKLCH{L: 0.5, C: -0.1, H: 0}, GamutFast)
	if got.C != 0 {
		t.Errorf("negative chroma should clamp to 0, got %g", got.C)
	}
}
