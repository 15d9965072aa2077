package engine

import "math"

// snap replaces v with exactly 0.0 when it is within the engine's
// configured tolerance of zero. Applied uniformly at every scalar write
// into x, w, or U so that denormalized residuals never drift into
// subsequent pivot selection or substitution steps.
func (e *Engine) snap(v float64) float64 {
	if math.Abs(v) < e.cfg.Tolerance {
		return 0.0
	}
	return v
}
