// SPDX-License-Identifier: MIT

package inference

import (
	"math"

	"github.com/katalvlaran/lvfuzzy/defuzz"
)

// Aggregate is the aggregated membership of one output variable for one
// call: either exact piecewise-constant Segments or sampled (X, Mu) points.
type Aggregate struct {
	Variable string
	Exact    bool
	Segments []defuzz.Segment
	X, Mu    []float64
	Area     float64
}

// aggregateExact evaluates max_r min(strength_r, consequent_r) at the
// midpoint of every elementary interval between breakpoints.
func (e *Engine) aggregateExact(output string, strengths []float64) *Aggregate {
	bp := e.breakpoints[output]
	v := e.vars[output]
	agg := &Aggregate{Variable: output, Exact: true, Segments: make([]defuzz.Segment, 0, len(bp)-1)}
	for i := 1; i < len(bp); i++ {
		lo, hi := bp[i-1], bp[i]
		mid := lo + (hi-lo)/2
		var h float64
		for _, ri := range e.byOutput[output] {
			s := strengths[ri]
			if s <= h {
				continue
			}
			term, _ := v.Term(e.rules[ri].Consequent().Term)
			h = math.Max(h, math.Min(s, term.Func.Evaluate(mid)))
		}
		agg.Segments = append(agg.Segments, defuzz.Segment{Lo: lo, Hi: hi, Height: h})
	}
	agg.Area = defuzz.SegmentsArea(agg.Segments)

	return agg
}

// aggregateSampled evaluates max_r min(strength_r, consequent_r(x)) at
// every grid point (universe samples plus consequent corners).
func (e *Engine) aggregateSampled(output string, strengths []float64) *Aggregate {
	xs := e.samples[output]
	v := e.vars[output]
	mu := make([]float64, len(xs))
	for _, ri := range e.byOutput[output] {
		s := strengths[ri]
		if s == 0 {
			continue
		}
		term, _ := v.Term(e.rules[ri].Consequent().Term)
		for i, x := range xs {
			if c := math.Min(s, term.Func.Evaluate(x)); c > mu[i] {
				mu[i] = c
			}
		}
	}

	return &Aggregate{Variable: output, X: xs, Mu: mu, Area: defuzz.SampledArea(xs, mu)}
}

// defuzzify returns the centroid of agg.
func (agg *Aggregate) defuzzify() (float64, error) {
	if agg.Exact {
		return defuzz.CentroidSegments(agg.Segments)
	}

	return defuzz.Centroid(agg.X, agg.Mu)
}
