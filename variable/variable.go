// SPDX-License-Identifier: MIT

package variable

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvfuzzy/membership"
)

// Term is a linguistic value of a variable: a name and its membership function.
type Term struct {
	Name string
	Func membership.Function
}

// Degrees maps term name → membership degree for one crisp value.
// Fuzzify always fills every term, including zero degrees.
type Degrees map[string]float64

// Names returns the term names in ascending order.
func (d Degrees) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Variable is a named universe with an ordered set of uniquely named terms.
type Variable struct {
	name     string
	universe Universe
	terms    []Term
	index    map[string]int
}

// New builds an immutable variable.
//
// Errors:
//   - ErrInvalidVariable if name is empty or no terms are given.
//   - ErrInvalidTerm if a term has an empty name or nil function.
//   - ErrDuplicateTerm if two terms share a name.
//   - ErrInvalidUniverse if u was not produced by NewUniverse (zero value).
func New(name string, u Universe, terms ...Term) (*Variable, error) {
	if name == "" {
		return nil, fmt.Errorf("empty name: %w", ErrInvalidVariable)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%s: no terms: %w", name, ErrInvalidVariable)
	}
	if _, err := NewUniverse(u.Min, u.Max, u.Resolution); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	v := &Variable{
		name:     name,
		universe: u,
		terms:    make([]Term, 0, len(terms)),
		index:    make(map[string]int, len(terms)),
	}
	for i, t := range terms {
		if t.Name == "" {
			return nil, fmt.Errorf("%s: term %d has no name: %w", name, i, ErrInvalidTerm)
		}
		if t.Func == nil {
			return nil, fmt.Errorf("%s.%s: nil membership function: %w", name, t.Name, ErrInvalidTerm)
		}
		if _, dup := v.index[t.Name]; dup {
			return nil, fmt.Errorf("%s.%s: %w", name, t.Name, ErrDuplicateTerm)
		}
		v.index[t.Name] = len(v.terms)
		v.terms = append(v.terms, t)
	}

	return v, nil
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// Universe returns the variable's universe of discourse.
func (v *Variable) Universe() Universe { return v.universe }

// Term looks a term up by name.
func (v *Variable) Term(name string) (Term, error) {
	i, ok := v.index[name]
	if !ok {
		return Term{}, fmt.Errorf("%s.%s: %w", v.name, name, ErrUnknownTerm)
	}

	return v.terms[i], nil
}

// HasTerm reports whether the variable defines the named term.
func (v *Variable) HasTerm(name string) bool {
	_, ok := v.index[name]

	return ok
}

// TermNames returns the term names in declaration order.
func (v *Variable) TermNames() []string {
	names := make([]string, len(v.terms))
	for i, t := range v.terms {
		names[i] = t.Name
	}

	return names
}

// Fuzzify clamps x into the universe and evaluates every term at it.
//
// Description:
//
//	Readings outside [Min,Max] are treated as the nearest bound, so a
//	sensor past the range still saturates the edge terms instead of
//	dropping to 0.
//
// Complexity:
//
//	Time   = O(Σ cost(term)); O(k) for k analytic terms
//	Memory = O(k)
func (v *Variable) Fuzzify(x float64) Degrees {
	x = v.universe.Clamp(x)
	out := make(Degrees, len(v.terms))
	for _, t := range v.terms {
		out[t.Name] = t.Func.Evaluate(x)
	}

	return out
}

// Curve samples one term over the universe, for presentation layers that
// plot or export membership shapes. Every term of a variable is sampled on
// the same points. Fails with ErrTooManySamples on an oversized universe.
func (v *Variable) Curve(term string) (xs, mu []float64, err error) {
	t, err := v.Term(term)
	if err != nil {
		return nil, nil, err
	}
	if xs, err = v.universe.Grid(); err != nil {
		return nil, nil, err
	}
	mu = make([]float64, len(xs))
	for i, x := range xs {
		mu[i] = t.Func.Evaluate(x)
	}

	return xs, mu, nil
}
