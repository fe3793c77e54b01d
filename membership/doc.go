// Package membership implements fuzzy membership functions: pure evaluators
// that map a crisp value to a degree of truth in [0,1].
//
// 🚀 Shapes:
//
//	Triangular(a,b,c)     : 0 outside [a,c], peak 1 at b
//	Trapezoidal(a,b,c,d)  : ramps on [a,b] and [c,d], plateau 1 on [b,c]
//	Gaussian(mean,sigma)  : exp(−(x−mean)²/(2σ²)), positive near the mean
//	PiecewiseConstant     : closed intervals [lo,hi] → degree
//	PiecewiseLinear       : polyline through (x,y) points
//
// Every shape is evaluated through the same Function interface, and every
// Evaluate result is clamped into [0,1]; NaN evaluates to 0.
//
// ⚙️ Usage:
//
//	warm, err := membership.NewTriangular(15, 25, 35)
//	if err != nil {
//	  // errors.Is(err, membership.ErrInvalidShape)
//	}
//	mu := warm.Evaluate(22) // 0.7
//
// Constructors validate shape parameters once; evaluation never fails.
// Functions are immutable and safe for concurrent use.
package membership
