package optics

import (
	"math"
	"testing"
)

func TestThinFilmPeriodicity(t *testing.T) {
	// For a fixed film the reflectance must peak where the optical path
	// difference equals the wavelength (constructive) and bottom out at
	// half the wavelength (destructive).
	film := SoapBubbleMedium()
	const substrate = 1.0
	opd := film.OpticalPathDifference(1)

	constructive := film.Reflectance(substrate, 1, opd)
	destructive := film.Reflectance(substrate, 1, opd*2) // OPD = lambda/2

	// Probe wavelengths slightly off the constructive peak.
	if film.Reflectance(substrate, 1, opd*1.05) >= constructive ||
		film.Reflectance(substrate, 1, opd*0.95) >= constructive {
		t.Error("OPD = lambda is not a local maximum")
	}
	if film.Reflectance(substrate, 1, opd*2*1.05) <= destructive ||
		film.Reflectance(substrate, 1, opd*2*0.95) <= destructive {
		t.Error("OPD = lambda/2 is not a local minimum")
	}
	if constructive <= destructive {
		t.Errorf("constructive %g not above destructive %g", constructive, destructive)
	}
}

func TestThinFilmReflectanceRGBInRange(t *testing.T) {
	films := []Film{SoapBubbleThin(), SoapBubbleMedium(), SoapBubbleThick(), OilSlick()}
	for _, film := range films {
		r, g, b := film.ReflectanceRGB(1.0, 1.0)
		for i, v := range []float64{r, g, b} {
			if v < 0 || v > 1 {
				t.Errorf("film %+v channel %d reflectance %g outside [0,1]", film, i, v)
			}
		}
	}
}

func TestThinFilmAngleDependence(t *testing.T) {
	// Tilting the film shortens the in-film path projection, shifting the
	// interference; the OPD must shrink with the incidence cosine.
	film := SoapBubbleMedium()
	if film.OpticalPathDifference(0.5) >= film.OpticalPathDifference(1) {
		t.Error("OPD should decrease for oblique incidence")
	}
}

func TestThinFilmIndexMatchedSubstrate(t *testing.T) {
	// A substrate matching the film index removes the second interface, so
	// the interference disappears and the reflectance collapses to the
	// bare first-interface Fresnel value, independent of wavelength.
	film := Film{IOR: 1.5, ThicknessNM: 300}
	want := FresnelReflectance(1, 1.5, 1)
	for _, wl := range []float64{450, 550, 650} {
		if r := film.Reflectance(1.5, 1, wl); math.Abs(r-want) > 1e-12 {
			t.Errorf("index-matched film reflectance at %gnm = %g, want %g", wl, r, want)
		}
	}
}

func TestThinFilmSpectrum(t *testing.T) {
	film := OilSlick()
	spectrum := film.ReflectanceSpectrum(1.5, 1, 31)
	if len(spectrum) != 31 {
		t.Fatalf("spectrum length = %d, want 31", len(spectrum))
	}
	for i, v := range spectrum {
		if v < 0 || v > 1 {
			t.Errorf("sample %d = %g outside [0,1]", i, v)
		}
	}

	// RGB evaluation must agree with the dense sampling at the matching
	// wavelengths (both call the same kernel).
	r, _, _ := film.ReflectanceRGB(1.5, 1)
	if direct := film.Reflectance(1.5, 1, WavelengthRed); r != direct {
		t.Errorf("RGB red %g != direct %g", r, direct)
	}
}
