// SPDX-License-Identifier: MIT

package membership

import "math"

// Shape tags a membership function variant.
type Shape int

const (
	// ShapeTriangular is a three-point triangle (a,b,c).
	ShapeTriangular Shape = iota
	// ShapeTrapezoidal is a four-point trapezoid (a,b,c,d).
	ShapeTrapezoidal
	// ShapeGaussian is a gaussian bell (mean,sigma).
	ShapeGaussian
	// ShapePiecewiseConstant is a table of closed intervals with constant degrees.
	ShapePiecewiseConstant
	// ShapePiecewiseLinear is a polyline through (x,y) points.
	ShapePiecewiseLinear
)

// String returns the canonical shape tag.
func (s Shape) String() string {
	switch s {
	case ShapeTriangular:
		return "triangular"
	case ShapeTrapezoidal:
		return "trapezoidal"
	case ShapeGaussian:
		return "gaussian"
	case ShapePiecewiseConstant:
		return "piecewise"
	case ShapePiecewiseLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Function maps a crisp value to a membership degree.
//
// Evaluate always returns a value in [0,1]. Support reports the closed range
// outside of which the degree is 0; for shapes with infinite tails (Gaussian)
// it reports a ±4σ band and is only meant for display and breakpoints.
type Function interface {
	Evaluate(x float64) float64
	Shape() Shape
	Support() (lo, hi float64)
	String() string
}

// Interval is one row of a piecewise-constant table: the closed range
// [Lo,Hi] carries Degree.
type Interval struct {
	Lo, Hi float64
	Degree float64
}

// Point is a vertex of a piecewise-linear membership function.
type Point struct {
	X, Y float64
}

// clamp01 folds v into [0,1]; NaN maps to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}

	return v
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
