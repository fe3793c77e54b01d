// SPDX-License-Identifier: MIT

package defuzz

import (
	"fmt"
	"math"
)

// Segment is a constant-height piece [Lo,Hi] of a piecewise-constant
// membership function.
type Segment struct {
	Lo, Hi float64
	Height float64
}

// Area returns (Hi-Lo)·Height.
func (s Segment) Area() float64 { return (s.Hi - s.Lo) * s.Height }

// Moment returns Area·(Lo+Hi)/2.
func (s Segment) Moment() float64 { return s.Area() * (s.Lo + s.Hi) / 2 }

// CentroidSegments returns Σmoment / Σarea over segs.
//
// Errors:
//   - ErrInvalidSegment for lo > hi, negative height or non-finite values.
//   - ErrZeroMembershipArea when Σarea == 0 (including an empty slice).
//
// Complexity: O(len(segs)).
func CentroidSegments(segs []Segment) (float64, error) {
	var area, moment float64
	for i, s := range segs {
		if !finite(s.Lo, s.Hi, s.Height) || s.Lo > s.Hi || s.Height < 0 {
			return 0, fmt.Errorf("segment %d [%g,%g]@%g: %w", i, s.Lo, s.Hi, s.Height, ErrInvalidSegment)
		}
		area += s.Area()
		moment += s.Moment()
	}
	if area == 0 {
		return 0, ErrZeroMembershipArea
	}

	return moment / area, nil
}

// SegmentsArea returns Σarea; invalid segments are not checked.
func SegmentsArea(segs []Segment) float64 {
	var area float64
	for _, s := range segs {
		area += s.Area()
	}

	return area
}

// Centroid integrates sampled membership (xs[i], mu[i]) with linear pieces
// between samples and returns the centroid.
//
// Implementation:
//   - Stage 1: validate lengths, strictly increasing xs, finite non-negative mu.
//   - Stage 2: for each piece accumulate area (x1−x0)(y0+y1)/2 and the exact
//     first moment (x1−x0)(x0(2y0+y1) + x1(y0+2y1))/6.
//   - Stage 3: divide; zero area is ErrZeroMembershipArea.
//
// Complexity: O(n).
func Centroid(xs, mu []float64) (float64, error) {
	if len(xs) != len(mu) {
		return 0, fmt.Errorf("len(xs)=%d len(mu)=%d: %w", len(xs), len(mu), ErrLengthMismatch)
	}
	if len(xs) < 2 {
		return 0, ErrTooFewSamples
	}

	var area, moment float64
	for i := 1; i < len(xs); i++ {
		x0, x1 := xs[i-1], xs[i]
		y0, y1 := mu[i-1], mu[i]
		if !finite(x0, x1, y0, y1) || x1 <= x0 || y0 < 0 || y1 < 0 {
			return 0, fmt.Errorf("piece %d (%g,%g)→(%g,%g): %w", i, x0, y0, x1, y1, ErrInvalidSegment)
		}
		w := x1 - x0
		area += w * (y0 + y1) / 2
		moment += w * (x0*(2*y0+y1) + x1*(y0+2*y1)) / 6
	}
	if area == 0 {
		return 0, ErrZeroMembershipArea
	}

	return moment / area, nil
}

// SampledArea returns the trapezoid area under (xs, mu); mismatched input
// yields 0.
func SampledArea(xs, mu []float64) float64 {
	if len(xs) != len(mu) {
		return 0
	}
	var area float64
	for i := 1; i < len(xs); i++ {
		area += (xs[i] - xs[i-1]) * (mu[i-1] + mu[i]) / 2
	}

	return area
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
