package glass

// BatchResult holds struct-of-arrays results for a batch evaluation. All
// slices share the length of the input material slice and preserve its
// order.
type BatchResult struct {
	Opacity         []float64
	ScatterRadiusMM []float64
	FresnelNormal   []float64
	FresnelEdge     []float64
	Transmittance   [][3]float64
}

// Len returns the number of evaluated materials.
func (r BatchResult) Len() int {
	return len(r.Opacity)
}

// BatchEvaluator evaluates many materials under one shared context,
// amortising per-call setup. Items are independent: no result depends on
// any other item's inputs, and every element equals the corresponding
// single Evaluate call exactly.
type BatchEvaluator struct {
	ctx Context
}

// NewBatchEvaluator creates a batch evaluator over the given context.
func NewBatchEvaluator(ctx Context) BatchEvaluator {
	return BatchEvaluator{ctx: ctx}
}

// Context returns the context the evaluator was built with.
func (e BatchEvaluator) Context() Context {
	return e.ctx
}

// Evaluate resolves all materials in order. The full per-item Evaluated
// values are reduced to the struct-of-arrays form render backends consume.
func (e BatchEvaluator) Evaluate(materials []Material) BatchResult {
	result := BatchResult{
		Opacity:         make([]float64, len(materials)),
		ScatterRadiusMM: make([]float64, len(materials)),
		FresnelNormal:   make([]float64, len(materials)),
		FresnelEdge:     make([]float64, len(materials)),
		Transmittance:   make([][3]float64, len(materials)),
	}
	for i, m := range materials {
		ev := Evaluate(m, e.ctx)
		result.Opacity[i] = ev.Opacity
		result.ScatterRadiusMM[i] = ev.ScatterRadiusMM
		result.FresnelNormal[i] = ev.FresnelNormal
		result.FresnelEdge[i] = ev.FresnelEdge
		result.Transmittance[i] = ev.Transmittance
	}
	return result
}

// EvaluateFull resolves all materials in order, returning the complete
// Evaluated value per item for callers that need more than the
// struct-of-arrays view.
func (e BatchEvaluator) EvaluateFull(materials []Material) []Evaluated {
	out := make([]Evaluated, len(materials))
	for i, m := range materials {
		out[i] = Evaluate(m, e.ctx)
	}
	return out
}
