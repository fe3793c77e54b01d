// SPDX-License-Identifier: MIT

package membership

import (
	"fmt"
	"strings"
)

// ParseShape maps a textual tag to a Shape. Tags are case-insensitive and
// accept the common scikit-fuzzy aliases (trimf, trapmf, gaussmf).
func ParseShape(tag string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "triangular", "triangle", "trimf":
		return ShapeTriangular, nil
	case "trapezoidal", "trapezoid", "trapmf":
		return ShapeTrapezoidal, nil
	case "gaussian", "gauss", "gaussmf":
		return ShapeGaussian, nil
	case "piecewise", "table", "constant":
		return ShapePiecewiseConstant, nil
	case "linear", "polyline", "piecewise_linear":
		return ShapePiecewiseLinear, nil
	default:
		return 0, fmt.Errorf("%q: %w", tag, ErrUnknownShape)
	}
}

// New builds a Function from a shape tag and a flat parameter list.
//
// Description:
//
//	This is the entry point for rule bases read from files, where a term is
//	a tag plus numbers. Tags are matched case-insensitively and accept the
//	usual aliases (trimf, trapmf, gaussmf, table, polyline).
//
// Algorithm Outline:
//  1. Resolve the tag with ParseShape.
//  2. Check the parameter count for the shape.
//  3. Regroup the flat list and delegate to the shape constructor for the
//     remaining checks.
//
// Complexity:
//
//	Time   = O(p) for p parameters
//	Memory = O(p); tables and polylines are copied
//
// Parameter layout per shape:
//   - triangular:  a, b, c
//   - trapezoidal: a, b, c, d
//   - gaussian:    mean, sigma
//   - piecewise:   lo₁, hi₁, degree₁, lo₂, hi₂, degree₂, ...
//   - linear:      x₁, y₁, x₂, y₂, ...
//
// Errors:
//   - ErrUnknownShape for an unrecognized tag.
//   - ErrInvalidShape for a wrong parameter count or violated invariant.
func New(tag string, params []float64) (Function, error) {
	shape, err := ParseShape(tag)
	if err != nil {
		return nil, err
	}

	switch shape {
	case ShapeTriangular:
		if len(params) != 3 {
			return nil, shapeErrorf(shape, "want 3 parameters, got %d", len(params))
		}
		t, err := NewTriangular(params[0], params[1], params[2])
		if err != nil {
			return nil, err
		}
		return t, nil
	case ShapeTrapezoidal:
		if len(params) != 4 {
			return nil, shapeErrorf(shape, "want 4 parameters, got %d", len(params))
		}
		t, err := NewTrapezoidal(params[0], params[1], params[2], params[3])
		if err != nil {
			return nil, err
		}
		return t, nil
	case ShapeGaussian:
		if len(params) != 2 {
			return nil, shapeErrorf(shape, "want 2 parameters, got %d", len(params))
		}
		g, err := NewGaussian(params[0], params[1])
		if err != nil {
			return nil, err
		}
		return g, nil
	case ShapePiecewiseConstant:
		if len(params) == 0 || len(params)%3 != 0 {
			return nil, shapeErrorf(shape, "want (lo,hi,degree) triples, got %d values", len(params))
		}
		ivs := make([]Interval, 0, len(params)/3)
		for i := 0; i < len(params); i += 3 {
			ivs = append(ivs, Interval{Lo: params[i], Hi: params[i+1], Degree: params[i+2]})
		}
		p, err := NewPiecewiseConstant(ivs...)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		if len(params)%2 != 0 {
			return nil, shapeErrorf(shape, "want (x,y) pairs, got %d values", len(params))
		}
		pts := make([]Point, 0, len(params)/2)
		for i := 0; i < len(params); i += 2 {
			pts = append(pts, Point{X: params[i], Y: params[i+1]})
		}
		p, err := NewPiecewiseLinear(pts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}
