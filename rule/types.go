// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"
	"strings"
)

// Operator combines antecedent clause degrees.
type Operator int

const (
	// And is the fuzzy conjunction (minimum).
	And Operator = iota
	// Or is the fuzzy disjunction (maximum).
	Or
)

// String returns "AND" or "OR".
func (o Operator) String() string {
	switch o {
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// ParseOperator accepts and/&&/min and or/||/max, case-insensitively.
// The empty string means And.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "and", "&&", "min":
		return And, nil
	case "or", "||", "max":
		return Or, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownOperator)
	}
}

// Clause is one "variable IS term" proposition.
type Clause struct {
	Variable string
	Term     string
}

func (c Clause) String() string {
	return c.Variable + " IS " + c.Term
}

// Lookup resolves a variable name to its term catalogue. *variable.Variable
// satisfies TermSet; the indirection keeps rule free of engine concerns.
type Lookup func(name string) (TermSet, bool)

// TermSet is the part of a fuzzy variable a rule needs for validation.
type TermSet interface {
	HasTerm(name string) bool
}

// Option configures a Rule at construction.
type Option func(*Rule)

// WithWeight sets the rule weight; validated by New.
func WithWeight(w float64) Option {
	return func(r *Rule) { r.weight = w }
}

// WithName labels the rule for diagnostics and metrics.
func WithName(name string) Option {
	return func(r *Rule) { r.name = name }
}

// DefaultWeight is the weight of a rule built without WithWeight.
const DefaultWeight = 1.0
