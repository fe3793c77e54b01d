// SPDX-License-Identifier: MIT

package membership

// Corners returns the abscissas where fn changes slope or steps: triangle
// vertices, trapezoid shoulders, polyline points, table endpoints and the
// gaussian mean. Functions of an unknown type report their support bounds.
// Duplicates are kept; callers merge and deduplicate.
//
// Between two consecutive corners every built-in shape except the gaussian
// is linear, so sampling at the corners integrates it exactly.
//
// Complexity:
//
//	Time   = O(c) for c corners
//	Memory = O(c)
func Corners(fn Function) []float64 {
	switch f := fn.(type) {
	case *Triangular:
		return []float64{f.A, f.B, f.C}
	case *Trapezoidal:
		return []float64{f.A, f.B, f.C, f.D}
	case *Gaussian:
		return []float64{f.Mean}
	case *PiecewiseConstant:
		return f.Breakpoints()
	case *PiecewiseLinear:
		xs := make([]float64, len(f.points))
		for i, pt := range f.points {
			xs[i] = pt.X
		}
		return xs
	default:
		lo, hi := fn.Support()
		return []float64{lo, hi}
	}
}
