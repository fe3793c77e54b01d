// SPDX-License-Identifier: MIT

package membership

import "fmt"

// Trapezoidal has linear ramps on [A,B] and [C,D] and a plateau of 1 on [B,C].
type Trapezoidal struct {
	A, B, C, D float64
}

// NewTrapezoidal validates a <= b <= c <= d and returns the trapezoid.
func NewTrapezoidal(a, b, c, d float64) (*Trapezoidal, error) {
	if !finite(a, b, c, d) {
		return nil, shapeErrorf(ShapeTrapezoidal, "parameters must be finite")
	}
	if a > b || b > c || c > d {
		return nil, shapeErrorf(ShapeTrapezoidal, "want a<=b<=c<=d, got (%g,%g,%g,%g)", a, b, c, d)
	}

	return &Trapezoidal{A: a, B: b, C: c, D: d}, nil
}

// Evaluate returns the degree of x.
func (t *Trapezoidal) Evaluate(x float64) float64 {
	switch {
	case x >= t.B && x <= t.C:
		return 1
	case x <= t.A || x >= t.D:
		return 0
	case x < t.B:
		// x in (A,B) implies B > A
		return clamp01((x - t.A) / (t.B - t.A))
	default:
		return clamp01((t.D - x) / (t.D - t.C))
	}
}

// Shape returns ShapeTrapezoidal.
func (t *Trapezoidal) Shape() Shape { return ShapeTrapezoidal }

// Support returns [A,D].
func (t *Trapezoidal) Support() (float64, float64) { return t.A, t.D }

func (t *Trapezoidal) String() string {
	return fmt.Sprintf("trapezoidal(%g,%g,%g,%g)", t.A, t.B, t.C, t.D)
}
