package contrast

import (
	"github.com/jmylchreest/lustre/internal/colour"
)

// WCAG conformance levels.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Minimum contrast ratios per WCAG 2.x success criteria 1.4.3 and 1.4.6.
// https://www.w3.org/TR/WCAG21/#contrast-minimum
const (
	aaNormalRatio  = 4.5
	aaLargeRatio   = 3.0
	aaaNormalRatio = 7.0
	aaaLargeRatio  = 4.5
)

// WCAGRatio calculates the WCAG 2.x contrast ratio between two colours.
// Returns a value between 1 and 21, where 21 is maximum contrast (black
// against white). The metric is symmetric in its arguments.
func WCAGRatio(fg, bg colour.Colour) float64 {
	l1 := fg.RelativeLuminance()
	l2 := bg.RelativeLuminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// WCAGEvaluate evaluates the WCAG contrast ratio as a Result. The ratio is
// symmetric so the polarity is always PolarityNone.
func WCAGEvaluate(fg, bg colour.Colour) Result {
	return Result{Value: WCAGRatio(fg, bg), Polarity: PolarityNone}
}

// WCAGEvaluateBatch evaluates equal-length foreground/background slices
// element-wise. Returns a ValidationError if the lengths differ. The
// results are identical to calling WCAGEvaluate per pair.
func WCAGEvaluateBatch(fgs, bgs []colour.Colour) ([]Result, error) {
	if len(fgs) != len(bgs) {
		return nil, colour.NewValidationError("batch",
			"foreground and background lengths differ: %d vs %d", len(fgs), len(bgs))
	}
	results := make([]Result, len(fgs))
	for i := range fgs {
		results[i] = WCAGEvaluate(fgs[i], bgs[i])
	}
	return results, nil
}

// WCAGPasses reports whether a contrast ratio satisfies the given WCAG
// level for normal or large text. Unknown levels never pass.
func WCAGPasses(ratio float64, level Level, largeText bool) bool {
	switch level {
	case LevelAA:
		if largeText {
			return ratio >= aaLargeRatio
		}
		return ratio >= aaNormalRatio
	case LevelAAA:
		if largeText {
			return ratio >= aaaLargeRatio
		}
		return ratio >= aaaNormalRatio
	default:
		return false
	}
}
