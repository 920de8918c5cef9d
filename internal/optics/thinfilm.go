package optics

import "math"

// Film is a thin transparent layer characterised by its refractive index
// and physical thickness in nanometres. Light reflecting from the two film
// surfaces interferes, producing wavelength-dependent (iridescent)
// reflectance.
type Film struct {
	IOR         float64
	ThicknessNM float64
}

// Representative wavelengths (nm) for RGB evaluation.
const (
	WavelengthRed   = 650.0
	WavelengthGreen = 550.0
	WavelengthBlue  = 450.0
)

// Visible spectrum bounds for dense spectral sampling.
const (
	spectrumMinNM = 380.0
	spectrumMaxNM = 780.0
)

// Film presets. Soap films sit around n=1.33 (soapy water); engine oil on
// wet asphalt around n=1.47.
func SoapBubbleThin() Film   { return Film{IOR: 1.33, ThicknessNM: 150} }
func SoapBubbleMedium() Film { return Film{IOR: 1.33, ThicknessNM: 400} }
func SoapBubbleThick() Film  { return Film{IOR: 1.33, ThicknessNM: 700} }
func OilSlick() Film         { return Film{IOR: 1.47, ThicknessNM: 350} }

// OpticalPathDifference returns OPD = 2*n*d*cos(theta_film) in nanometres,
// where theta_film follows from Snell's law for light arriving from air at
// the given incidence cosine.
func (f Film) OpticalPathDifference(cosI float64) float64 {
	cosI = clampCos(cosI)
	sinI := math.Sqrt(1 - cosI*cosI)
	sinF := sinI / f.IOR
	cosF := math.Sqrt(math.Max(0, 1-sinF*sinF))
	return 2 * f.IOR * f.ThicknessNM * cosF
}

// Reflectance evaluates the film's reflectance at a single wavelength (nm)
// for light arriving from air and a substrate of index substrateIOR below
// the film. The two interface reflectances are combined with the phase
// term using the Airy formula. The interface amplitudes are combined
// unsigned, which places the constructive maximum at OPD = wavelength and
// the destructive minimum at OPD = wavelength/2.
func (f Film) Reflectance(substrateIOR, cosI, wavelengthNM float64) float64 {
	cosI = clampCos(cosI)
	sinI := math.Sqrt(1 - cosI*cosI)
	sinF := sinI / f.IOR
	cosF := math.Sqrt(math.Max(0, 1-sinF*sinF))

	// Interface intensity reflectances at the actual refraction angles.
	r1 := math.Sqrt(FresnelReflectance(1, f.IOR, cosI))
	r2 := math.Sqrt(FresnelReflectance(f.IOR, substrateIOR, cosF))

	phase := 2 * math.Pi * f.OpticalPathDifference(cosI) / wavelengthNM
	cosPhase := math.Cos(phase)

	num := r1*r1 + r2*r2 + 2*r1*r2*cosPhase
	den := 1 + r1*r1*r2*r2 + 2*r1*r2*cosPhase
	if den == 0 {
		return 0
	}
	return num / den
}

// ReflectanceRGB evaluates the film at the three representative RGB
// wavelengths (650/550/450 nm) and returns the triple in [0,1].
func (f Film) ReflectanceRGB(substrateIOR, cosI float64) (r, g, b float64) {
	r = f.Reflectance(substrateIOR, cosI, WavelengthRed)
	g = f.Reflectance(substrateIOR, cosI, WavelengthGreen)
	b = f.Reflectance(substrateIOR, cosI, WavelengthBlue)
	return r, g, b
}

// ReflectanceSpectrum samples the film across the visible spectrum at the
// given number of evenly spaced wavelengths, for spectral-fidelity
// rendering. samples below 2 are treated as 2.
func (f Film) ReflectanceSpectrum(substrateIOR, cosI float64, samples int) []float64 {
	if samples < 2 {
		samples = 2
	}
	out := make([]float64, samples)
	for i := range out {
		wl := spectrumMinNM + (spectrumMaxNM-spectrumMinNM)*float64(i)/float64(samples-1)
		out[i] = f.Reflectance(substrateIOR, cosI, wl)
	}
	return out
}
