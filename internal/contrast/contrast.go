// Package contrast implements the two standardised contrast metrics over
// colours: the symmetric WCAG 2.x luminance ratio and an APCA-style
// polarity-aware perceptual metric. Both operate on value types from the
// colour package and are pure functions, safe for concurrent use.
package contrast

// Polarity of a contrast result.
const (
	// PolarityDarkOnLight marks dark foreground text over a lighter
	// background (positive Lc).
	PolarityDarkOnLight = 1

	// PolarityLightOnDark marks light foreground text over a darker
	// background (negative Lc).
	PolarityLightOnDark = -1

	// PolarityNone is used where polarity does not apply: symmetric WCAG
	// ratios and APCA results clipped to the insufficient-contrast floor.
	PolarityNone = 0
)

// Result is the outcome of a contrast evaluation. WCAG values lie in
// [1,21] with no polarity; APCA values are signed Lc in [-108,106].
type Result struct {
	Value    float64
	Polarity int
}
