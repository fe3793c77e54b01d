// SPDX-License-Identifier: MIT

package relation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfuzzy/variable"
)

// CylindricalExtension returns the joint relation of a and b with
// degree(p, q) = min(a[p], b[q]) for every pair of terms.
//
// Description:
//
//	Each fuzzified set is extended cylindrically over the other axis and the
//	two extensions are intersected with the min t-norm. Either input may be
//	empty, yielding an empty relation.
//
// Algorithm Outline:
//  1. Sort the term names of a and of b; they fix the row-major order.
//  2. For every (p, q) store min(a[p], b[q]).
//
// Complexity:
//
//	Time   = O(|A|·|B| + |A|·log|A| + |B|·log|B|)
//	Memory = O(|A|·|B|)
func CylindricalExtension(a, b variable.Degrees) *Joint {
	j := &Joint{
		termsA: a.Names(),
		termsB: b.Names(),
		degree: make(map[Pair]float64, len(a)*len(b)),
	}
	for _, ta := range j.termsA {
		for _, tb := range j.termsB {
			j.degree[Pair{A: ta, B: tb}] = math.Min(a[ta], b[tb])
		}
	}

	return j
}

// Projection collapses j onto axis by taking, for every term of that axis,
// the maximum degree over all terms of the other axis.
//
// Algorithm Outline:
//  1. Pick the kept and the collapsed term lists for axis.
//  2. For every kept term, take the max over the collapsed terms (sup-projection).
//
// Complexity:
//
//	Time   = O(|A|·|B|)
//	Memory = O(|kept axis|)
//
// Errors:
//   - ErrUnknownAxis if axis is neither AxisA nor AxisB.
func Projection(j *Joint, axis Axis) (variable.Degrees, error) {
	var keep, other []string
	var cell func(k, o string) Pair
	switch axis {
	case AxisA:
		keep, other = j.termsA, j.termsB
		cell = func(k, o string) Pair { return Pair{A: k, B: o} }
	case AxisB:
		keep, other = j.termsB, j.termsA
		cell = func(k, o string) Pair { return Pair{A: o, B: k} }
	default:
		return nil, fmt.Errorf("%v: %w", axis, ErrUnknownAxis)
	}

	proj := make(variable.Degrees, len(keep))
	for _, k := range keep {
		var best float64
		for _, o := range other {
			best = math.Max(best, j.degree[cell(k, o)])
		}
		proj[k] = best
	}

	return proj, nil
}

// Analyze extends a and b into their joint relation and projects it back
// onto both axes.
func Analyze(a, b variable.Degrees) *Report {
	j := CylindricalExtension(a, b)
	// Both axes are known, Projection cannot fail here.
	pa, _ := Projection(j, AxisA)
	pb, _ := Projection(j, AxisB)

	return &Report{Joint: j, ProjA: pa, ProjB: pb}
}

// Relate fuzzifies x with va and y with vb and analyzes the pair. The joint
// relation is labelled with both variable names.
func Relate(va *variable.Variable, x float64, vb *variable.Variable, y float64) *Report {
	rep := Analyze(va.Fuzzify(x), vb.Fuzzify(y))
	rep.Joint.NameA, rep.Joint.NameB = va.Name(), vb.Name()

	return rep
}

// Degree returns the joint degree of (a, b); 0 for terms outside the relation.
func (j *Joint) Degree(a, b string) float64 { return j.degree[Pair{A: a, B: b}] }

// TermsA returns the sorted terms of the first axis.
func (j *Joint) TermsA() []string { return append([]string(nil), j.termsA...) }

// TermsB returns the sorted terms of the second axis.
func (j *Joint) TermsB() []string { return append([]string(nil), j.termsB...) }

// Len returns the number of cells, |A|·|B|.
func (j *Joint) Len() int { return len(j.degree) }

// Pairs returns every cell in row-major order (A outer, B inner).
func (j *Joint) Pairs() []Pair {
	out := make([]Pair, 0, len(j.degree))
	for _, ta := range j.termsA {
		for _, tb := range j.termsB {
			out = append(out, Pair{A: ta, B: tb})
		}
	}

	return out
}

// Support returns the cells with a positive degree, row-major.
func (j *Joint) Support() []Pair {
	var out []Pair
	for _, p := range j.Pairs() {
		if j.degree[p] > 0 {
			out = append(out, p)
		}
	}

	return out
}

// Max returns the largest degree in the relation (its height); 0 if empty.
func (j *Joint) Max() float64 {
	var h float64
	for _, d := range j.degree {
		h = math.Max(h, d)
	}

	return h
}
