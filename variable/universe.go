// SPDX-License-Identifier: MIT

package variable

import (
	"fmt"
	"math"
	"sort"
)

// maxSamples caps Grid so a tiny resolution over a wide range cannot
// allocate without bound. Only sampled variables are subject to it.
const maxSamples = 1 << 20

// Universe is the bounded, sampled domain of a fuzzy variable.
type Universe struct {
	Min, Max   float64
	Resolution float64
}

// NewUniverse validates min < max and resolution > 0, all finite. The
// sample count is checked later, by Grid, for variables that are sampled.
func NewUniverse(min, max, resolution float64) (Universe, error) {
	for _, v := range []float64{min, max, resolution} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Universe{}, fmt.Errorf("bounds must be finite: %w", ErrInvalidUniverse)
		}
	}
	if min >= max {
		return Universe{}, fmt.Errorf("min %g must be < max %g: %w", min, max, ErrInvalidUniverse)
	}
	if resolution <= 0 {
		return Universe{}, fmt.Errorf("resolution %g must be > 0: %w", resolution, ErrInvalidUniverse)
	}
	return Universe{Min: min, Max: max, Resolution: resolution}, nil
}

// Clamp folds x into [Min,Max].
func (u Universe) Clamp(x float64) float64 {
	if x < u.Min {
		return u.Min
	}
	if x > u.Max {
		return u.Max
	}

	return x
}

// Contains reports whether x lies within [Min,Max].
func (u Universe) Contains(x float64) bool {
	return x >= u.Min && x <= u.Max
}

// Len returns the number of sample points Samples produces.
func (u Universe) Len() int {
	n := int(math.Floor((u.Max-u.Min)/u.Resolution+1e-9)) + 1
	if last := u.Min + float64(n-1)*u.Resolution; u.Max-last > u.Resolution*1e-9 {
		n++
	}

	return n
}

// Samples returns Min, Min+r, Min+2r, ... with Max always as the final
// point, even when the range is not a multiple of the resolution.
// It does not bound the sample count; use Grid where the size is untrusted.
func (u Universe) Samples() []float64 {
	n := u.Len()
	xs := make([]float64, n)
	for i := 0; i < n-1; i++ {
		xs[i] = u.Min + float64(i)*u.Resolution
	}
	xs[n-1] = u.Max

	return xs
}

// Grid returns the sample points of u merged with extra points.
//
// Description:
//
//	Integration over a sampled membership function is exact on every
//	straight piece, so a grid that also contains the corners of the
//	functions being integrated (triangle vertices, trapezoid shoulders,
//	polyline points) integrates those shapes without error, however coarse
//	the resolution. A shape narrower than the resolution is never missed.
//
// Algorithm Outline:
//  1. Reject universes yielding 2^20 samples or more.
//  2. Start from Samples().
//  3. Append every extra point clamped into [Min,Max]; NaN points are skipped.
//  4. Sort ascending and drop duplicates.
//
// Complexity:
//
//	Time   = O((n+k)·log(n+k)) for n samples and k extra points
//	Memory = O(n+k)
//
// Errors:
//   - ErrTooManySamples if the resolution is too fine for the range.
func (u Universe) Grid(extra ...float64) ([]float64, error) {
	if (u.Max-u.Min)/u.Resolution >= maxSamples {
		return nil, fmt.Errorf("%v: %w", u, ErrTooManySamples)
	}

	xs := u.Samples()
	if len(extra) == 0 {
		return xs, nil
	}
	for _, x := range extra {
		if math.IsNaN(x) {
			continue
		}
		xs = append(xs, u.Clamp(x))
	}
	sort.Float64s(xs)

	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out, nil
}

func (u Universe) String() string {
	return fmt.Sprintf("[%g,%g]/%g", u.Min, u.Max, u.Resolution)
}
