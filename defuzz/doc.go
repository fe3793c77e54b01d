// Package defuzz reduces an aggregated membership function to one crisp
// number by the centroid of area:
//
//	crisp = ∫ x·μ(x) dx / ∫ μ(x) dx
//
// Two integrators are provided:
//
//   - CentroidSegments: exact, for piecewise-constant membership given as
//     [lo,hi] segments of constant height h. Each segment contributes
//     area (hi−lo)·h and moment area·(lo+hi)/2.
//   - Centroid: for sampled curves (x_i, μ_i). Consecutive samples are
//     joined linearly; each piece contributes its exact trapezoid area and
//     moment, so piecewise-linear shapes sampled at their breakpoints are
//     integrated without error.
//
// Both fail with ErrZeroMembershipArea when the total area is 0, which
// happens when no rule fired for the output. This is a recoverable
// condition: the caller substitutes a default or reports "no decision".
package defuzz
