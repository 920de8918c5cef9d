package colour

import (
	"math"
	"testing"
)

func TestAdaptationWhitePoint(t *testing.T) {
	// The adaptation matrix must map D65 white to approximately equal
	// cone-like responses.
	r, g, b := mulMat3(xyzToCone, whiteD65[0], whiteD65[1], whiteD65[2])
	mean := (r + g + b) / 3
	for i, v := range []float64{r, g, b} {
		if math.Abs(v-mean)/mean > 0.03 {
			t.Errorf("cone response %d = %g, mean %g: not approximately equal", i, v, mean)
		}
	}
}

func TestConeMatrixInverse(t *testing.T) {
	// coneToXYZ must undo xyzToCone exactly (within float rounding).
	x, y, z := 41.2, 21.3, 1.9
	r, g, b := mulMat3(xyzToCone, x, y, z)
	bx, by, bz := mulMat3(coneToXYZ, r, g, b)
	if math.Abs(bx-x) > 1e-9 || math.Abs(by-y) > 1e-9 || math.Abs(bz-z) > 1e-9 {
		t.Errorf("inverse matrix round trip (%g,%g,%g) -> (%g,%g,%g)", x, y, z, bx, by, bz)
	}
}

func TestCAMRoundTrip(t *testing.T) {
	// The inverse model must reconstruct the colour from (J, C, h) under the
	// same viewing conditions. This also exercises the achromatic-response
	// offset being re-added on the inverse path: removing it breaks every
	// case below by far more than one quantisation step.
	vc := StandardViewing()
	colours := []Colour{
		FromRGB(255, 0, 0),
		FromRGB(0, 255, 0),
		FromRGB(0, 0, 255),
		FromRGB(255, 255, 255),
		FromRGB(18, 18, 18),
		FromRGB(250, 128, 114),
		FromRGB(70, 130, 180),
		FromRGB(128, 128, 0),
	}

	for _, in := range colours {
		cam := ToCAM(in, vc)
		out := FromCAM(cam, vc)
		if absDiffU8(in.R, out.R) > 1 || absDiffU8(in.G, out.G) > 1 || absDiffU8(in.B, out.B) > 1 {
			t.Errorf("CAM round trip %s -> %s", in.Hex(), out.Hex())
		}
	}
}

func TestCAMCorrelateRanges(t *testing.T) {
	vc := StandardViewing()

	white := ToCAM(FromRGB(255, 255, 255), vc)
	if white.J < 95 || white.J > 105 {
		t.Errorf("white J = %g, want ~100", white.J)
	}
	if white.C > 5 {
		t.Errorf("white chroma = %g, want near 0", white.C)
	}

	black := ToCAM(FromRGB(0, 0, 0), vc)
	if black.J > 5 {
		t.Errorf("black J = %g, want near 0", black.J)
	}

	red := ToCAM(FromRGB(255, 0, 0), vc)
	grey := ToCAM(FromRGB(128, 128, 128), vc)
	if red.C <= grey.C {
		t.Errorf("red chroma %g should exceed grey chroma %g", red.C, grey.C)
	}
	if red.S <= grey.S {
		t.Errorf("red saturation %g should exceed grey saturation %g", red.S, grey.S)
	}
	if red.Q <= 0 || red.M <= 0 {
		t.Errorf("red brightness/colourfulness must be positive, got Q=%g M=%g", red.Q, red.M)
	}
}

func TestViewingConditionsDerivation(t *testing.T) {
	vc := StandardViewing()

	// z = 1.48 + 0.29*sqrt(n) with n = Y(L*=50)/100.
	wantZ := 1.48 + 0.29*math.Sqrt(yFromLstar(50)/100)
	if math.Abs(vc.z-wantZ) > 1e-12 {
		t.Errorf("z = %g, want %g", vc.z, wantZ)
	}
	if vc.nbb != vc.ncb {
		t.Errorf("Nbb %g and Ncb %g must be equal", vc.nbb, vc.ncb)
	}
	if vc.aw <= 0 {
		t.Errorf("Aw = %g, want positive", vc.aw)
	}
	// Average surround: exponential nonlinearity c = 0.69.
	if math.Abs(vc.c-0.69) > 1e-12 {
		t.Errorf("c = %g, want 0.69", vc.c)
	}
}

func TestViewingConditionsSurroundClamp(t *testing.T) {
	dim := NewViewingConditions(11.7, 50, -5)
	if dim.Surround != 0 {
		t.Errorf("surround should clamp to 0, got %g", dim.Surround)
	}
	avg := NewViewingConditions(11.7, 50, 7)
	if avg.Surround != 2 {
		t.Errorf("surround should clamp to 2, got %g", avg.Surround)
	}
}

func TestCAMDependsOnViewingConditions(t *testing.T) {
	c := FromRGB(200, 100, 40)
	bright := ToCAM(c, NewViewingConditions(300, 50, 2))
	dim := ToCAM(c, NewViewingConditions(5, 50, 2))
	if bright.Q == dim.Q {
		t.Error("brightness must vary with adapting luminance")
	}
}
