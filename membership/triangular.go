// SPDX-License-Identifier: MIT

package membership

import "fmt"

// Triangular is the classic triangle membership function.
//
// Description:
//
//	0 outside [A,C], rising linearly from (A,0) to (B,1) and falling linearly
//	from (B,1) to (C,0). A==B gives a vertical left edge (1 at A); B==C the
//	mirrored right edge.
type Triangular struct {
	A, B, C float64
}

// NewTriangular validates a <= b <= c and returns the triangle.
// Degenerate shoulders (a == b or b == c) are allowed.
//
// Complexity: O(1).
//
// Errors:
//   - ErrInvalidShape if any parameter is not finite or the order is violated.
func NewTriangular(a, b, c float64) (*Triangular, error) {
	if !finite(a, b, c) {
		return nil, shapeErrorf(ShapeTriangular, "parameters must be finite")
	}
	if a > b || b > c {
		return nil, shapeErrorf(ShapeTriangular, "want a<=b<=c, got (%g,%g,%g)", a, b, c)
	}

	return &Triangular{A: a, B: b, C: c}, nil
}

// Evaluate returns the degree of x.
//
// Algorithm Outline:
//  1. x == B is the peak: 1, also for degenerate shoulders.
//  2. Outside the open interval (A,C): 0.
//  3. Otherwise interpolate on the rising or falling ramp, clamped to [0,1].
func (t *Triangular) Evaluate(x float64) float64 {
	switch {
	case x == t.B:
		return 1
	case x <= t.A || x >= t.C:
		return 0
	case x < t.B:
		return clamp01((x - t.A) / (t.B - t.A))
	default:
		return clamp01((t.C - x) / (t.C - t.B))
	}
}

// Shape returns ShapeTriangular.
func (t *Triangular) Shape() Shape { return ShapeTriangular }

// Support returns [A,C].
func (t *Triangular) Support() (float64, float64) { return t.A, t.C }

func (t *Triangular) String() string {
	return fmt.Sprintf("triangular(%g,%g,%g)", t.A, t.B, t.C)
}
