// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvfuzzy/variable"
)

// Rule is an immutable fuzzy IF-THEN rule.
type Rule struct {
	name       string
	op         Operator
	clauses    []Clause
	consequent Clause
	weight     float64
}

// New builds a rule from its consequent, operator and antecedent clauses.
//
// Errors:
//   - ErrEmptyAntecedent if clauses is empty.
//   - ErrInvalidClause if any clause (or the consequent) has an empty name.
//   - ErrUnknownOperator if op is neither And nor Or.
//   - ErrInvalidWeight if the weight is NaN or outside [0,1].
func New(consequent Clause, op Operator, clauses []Clause, opts ...Option) (*Rule, error) {
	r := &Rule{
		op:         op,
		consequent: consequent,
		weight:     DefaultWeight,
	}
	for _, opt := range opts {
		opt(r)
	}

	if op != And && op != Or {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownOperator)
	}
	if len(clauses) == 0 {
		return nil, fmt.Errorf("%s: %w", r.label(), ErrEmptyAntecedent)
	}
	if math.IsNaN(r.weight) || r.weight < 0 || r.weight > 1 {
		return nil, fmt.Errorf("%s: weight %g: %w", r.label(), r.weight, ErrInvalidWeight)
	}
	for _, c := range append([]Clause{consequent}, clauses...) {
		if c.Variable == "" || c.Term == "" {
			return nil, fmt.Errorf("%s: clause %q: %w", r.label(), c, ErrInvalidClause)
		}
	}
	r.clauses = append([]Clause(nil), clauses...)

	return r, nil
}

// Name returns the rule label, empty when none was given.
func (r *Rule) Name() string { return r.name }

// Operator returns the antecedent operator.
func (r *Rule) Operator() Operator { return r.op }

// Weight returns the rule weight in [0,1].
func (r *Rule) Weight() float64 { return r.weight }

// Consequent returns the THEN clause.
func (r *Rule) Consequent() Clause { return r.consequent }

// Antecedents returns a copy of the IF clauses in order.
func (r *Rule) Antecedents() []Clause {
	return append([]Clause(nil), r.clauses...)
}

// Validate checks every clause against the available variables.
func (r *Rule) Validate(lookup Lookup) error {
	check := func(c Clause) error {
		vars, ok := lookup(c.Variable)
		if !ok {
			return fmt.Errorf("%s: %q: %w", r.label(), c.Variable, ErrUnknownVariable)
		}
		if !vars.HasTerm(c.Term) {
			return fmt.Errorf("%s: %q: %w", r.label(), c, ErrUnknownTerm)
		}

		return nil
	}
	for _, c := range r.clauses {
		if err := check(c); err != nil {
			return err
		}
	}

	return check(r.consequent)
}

// FiringStrength combines the clause degrees found in fuzzified (variable
// name → term degrees) with the rule operator and scales by the weight.
// A missing variable or term contributes degree 0; engines validate rules
// up front so this only happens when the caller skips an input.
func (r *Rule) FiringStrength(fuzzified map[string]variable.Degrees) float64 {
	var acc float64
	if r.op == And {
		acc = 1
	}
	for _, c := range r.clauses {
		d := fuzzified[c.Variable][c.Term]
		if r.op == And {
			acc = math.Min(acc, d)
		} else {
			acc = math.Max(acc, d)
		}
	}

	return clampUnit(acc * r.weight)
}

// String renders the rule as "IF a IS x AND b IS y THEN c IS z [w]".
func (r *Rule) String() string {
	parts := make([]string, len(r.clauses))
	for i, c := range r.clauses {
		parts[i] = c.String()
	}
	s := "IF " + strings.Join(parts, " "+r.op.String()+" ") + " THEN " + r.consequent.String()
	if r.weight != DefaultWeight {
		s += fmt.Sprintf(" [%g]", r.weight)
	}

	return s
}

// label is the rule name or, failing that, its consequent.
func (r *Rule) label() string {
	if r.name != "" {
		return r.name
	}

	return "rule→" + r.consequent.String()
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
