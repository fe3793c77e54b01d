// SPDX-License-Identifier: MIT

package membership

import (
	"fmt"
	"math"
	"strings"
)

// PiecewiseConstant is a table of closed intervals, each with a constant
// degree. A value covered by no interval has degree 0. Intervals are sorted
// and may share endpoints; on a shared endpoint the earlier interval wins.
type PiecewiseConstant struct {
	intervals []Interval
}

// NewPiecewiseConstant validates and copies the table.
//
// Requirements:
//   - at least one interval;
//   - Lo <= Hi, all finite;
//   - Degree in [0,1];
//   - sorted by Lo and non-overlapping (Lo[i] >= Hi[i-1]).
func NewPiecewiseConstant(intervals ...Interval) (*PiecewiseConstant, error) {
	if len(intervals) == 0 {
		return nil, shapeErrorf(ShapePiecewiseConstant, "at least one interval required")
	}
	out := make([]Interval, len(intervals))
	for i, iv := range intervals {
		if !finite(iv.Lo, iv.Hi, iv.Degree) {
			return nil, shapeErrorf(ShapePiecewiseConstant, "interval %d: values must be finite", i)
		}
		if iv.Lo > iv.Hi {
			return nil, shapeErrorf(ShapePiecewiseConstant, "interval %d: lo %g > hi %g", i, iv.Lo, iv.Hi)
		}
		if iv.Degree < 0 || iv.Degree > 1 {
			return nil, shapeErrorf(ShapePiecewiseConstant, "interval %d: degree %g outside [0,1]", i, iv.Degree)
		}
		if i > 0 && iv.Lo < intervals[i-1].Hi {
			return nil, shapeErrorf(ShapePiecewiseConstant, "interval %d overlaps interval %d", i, i-1)
		}
		out[i] = iv
	}

	return &PiecewiseConstant{intervals: out}, nil
}

// Evaluate returns the degree of the first interval containing x, or 0.
func (p *PiecewiseConstant) Evaluate(x float64) float64 {
	for _, iv := range p.intervals {
		if x < iv.Lo {
			// sorted: nothing further can contain x
			return 0
		}
		if x <= iv.Hi {
			return iv.Degree
		}
	}

	return 0
}

// Intervals returns a copy of the table.
func (p *PiecewiseConstant) Intervals() []Interval {
	out := make([]Interval, len(p.intervals))
	copy(out, p.intervals)

	return out
}

// Breakpoints returns every interval endpoint in ascending order, with
// duplicates kept; callers merge and deduplicate across functions.
func (p *PiecewiseConstant) Breakpoints() []float64 {
	bp := make([]float64, 0, 2*len(p.intervals))
	for _, iv := range p.intervals {
		bp = append(bp, iv.Lo, iv.Hi)
	}

	return bp
}

// Shape returns ShapePiecewiseConstant.
func (p *PiecewiseConstant) Shape() Shape { return ShapePiecewiseConstant }

// Support returns [first Lo, last Hi].
func (p *PiecewiseConstant) Support() (float64, float64) {
	return p.intervals[0].Lo, p.intervals[len(p.intervals)-1].Hi
}

func (p *PiecewiseConstant) String() string {
	parts := make([]string, len(p.intervals))
	for i, iv := range p.intervals {
		parts[i] = fmt.Sprintf("[%g,%g]@%g", iv.Lo, iv.Hi, iv.Degree)
	}

	return "piecewise(" + strings.Join(parts, " ") + ")"
}

// PiecewiseLinear interpolates linearly between points with strictly
// increasing X. Outside [first X, last X] the degree is 0.
type PiecewiseLinear struct {
	points []Point
}

// NewPiecewiseLinear validates and copies the polyline.
func NewPiecewiseLinear(points ...Point) (*PiecewiseLinear, error) {
	if len(points) < 2 {
		return nil, shapeErrorf(ShapePiecewiseLinear, "at least two points required, got %d", len(points))
	}
	out := make([]Point, len(points))
	for i, pt := range points {
		if !finite(pt.X, pt.Y) {
			return nil, shapeErrorf(ShapePiecewiseLinear, "point %d: values must be finite", i)
		}
		if pt.Y < 0 || pt.Y > 1 {
			return nil, shapeErrorf(ShapePiecewiseLinear, "point %d: degree %g outside [0,1]", i, pt.Y)
		}
		if i > 0 && pt.X <= points[i-1].X {
			return nil, shapeErrorf(ShapePiecewiseLinear, "point %d: x must be strictly increasing", i)
		}
		out[i] = pt
	}

	return &PiecewiseLinear{points: out}, nil
}

// Evaluate interpolates the degree of x.
func (p *PiecewiseLinear) Evaluate(x float64) float64 {
	first, last := p.points[0], p.points[len(p.points)-1]
	if x < first.X || x > last.X || math.IsNaN(x) {
		return 0
	}
	for i := 1; i < len(p.points); i++ {
		r := p.points[i]
		if x > r.X {
			continue
		}
		l := p.points[i-1]
		t := (x - l.X) / (r.X - l.X)

		return clamp01(l.Y + t*(r.Y-l.Y))
	}

	return clamp01(last.Y)
}

// Points returns a copy of the vertices.
func (p *PiecewiseLinear) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)

	return out
}

// Shape returns ShapePiecewiseLinear.
func (p *PiecewiseLinear) Shape() Shape { return ShapePiecewiseLinear }

// Support returns [first X, last X].
func (p *PiecewiseLinear) Support() (float64, float64) {
	return p.points[0].X, p.points[len(p.points)-1].X
}

func (p *PiecewiseLinear) String() string {
	parts := make([]string, len(p.points))
	for i, pt := range p.points {
		parts[i] = fmt.Sprintf("(%g,%g)", pt.X, pt.Y)
	}

	return "linear(" + strings.Join(parts, " ") + ")"
}
