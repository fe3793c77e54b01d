// SPDX-License-Identifier: MIT

package relation

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// ErrUnknownAxis indicates a projection axis other than AxisA or AxisB.
var ErrUnknownAxis = fmt.Errorf("relation: unknown axis: %w", lvfuzzy.ErrConfiguration)

// Axis selects the dimension a relation is projected onto.
type Axis int

const (
	// AxisA keeps the terms of the first variable.
	AxisA Axis = iota
	// AxisB keeps the terms of the second variable.
	AxisB
)

func (a Axis) String() string {
	switch a {
	case AxisA:
		return "A"
	case AxisB:
		return "B"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Pair addresses one cell of a Joint relation.
type Pair struct {
	A, B string
}

// Joint is the fuzzy relation (termA, termB) → degree over the cartesian
// product of two term sets. Term names are kept sorted so every iteration
// order is deterministic.
type Joint struct {
	// NameA and NameB optionally label the two axes (variable names).
	NameA, NameB string

	termsA, termsB []string
	degree         map[Pair]float64
}

// Report is the full two-axis analysis of a pair of fuzzified values.
type Report struct {
	Joint *Joint
	// ProjA and ProjB are the projections onto each axis.
	ProjA, ProjB variable.Degrees
}
