// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/rule"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// Build turns the document into a configured engine. Variable defaults
// become inference.WithFallback options applied before opts, so callers can
// still override them.
func (rb *RuleBase) Build(opts ...inference.Option) (*inference.Engine, error) {
	vars, err := rb.BuildVariables()
	if err != nil {
		return nil, err
	}
	rules, err := rb.BuildRules()
	if err != nil {
		return nil, err
	}

	all := make([]inference.Option, 0, len(rb.Variables)+len(opts))
	for _, v := range rb.Variables {
		if v.Default != nil {
			all = append(all, inference.WithFallback(v.Name, *v.Default))
		}
	}
	all = append(all, opts...)

	return inference.Configure(vars, rules, all...)
}

// BuildVariables validates and builds every declared variable, in order.
func (rb *RuleBase) BuildVariables() ([]*variable.Variable, error) {
	out := make([]*variable.Variable, 0, len(rb.Variables))
	for i, v := range rb.Variables {
		u, err := variable.NewUniverse(v.Universe.Min, v.Universe.Max, v.Universe.Resolution)
		if err != nil {
			return nil, fmt.Errorf("variable %d (%q): %w", i, v.Name, err)
		}
		terms := make([]variable.Term, 0, len(v.Terms))
		for k, t := range v.Terms {
			fn, err := t.function()
			if err != nil {
				return nil, fmt.Errorf("variable %d (%q) term %d (%q): %w", i, v.Name, k, t.Name, err)
			}
			terms = append(terms, variable.Term{Name: t.Name, Func: fn})
		}
		built, err := variable.New(v.Name, u, terms...)
		if err != nil {
			return nil, fmt.Errorf("variable %d: %w", i, err)
		}
		out = append(out, built)
	}

	return out, nil
}

// BuildRules builds every declared rule, in order. Variable and term
// references are checked later by inference.Configure.
func (rb *RuleBase) BuildRules() ([]*rule.Rule, error) {
	out := make([]*rule.Rule, 0, len(rb.Rules))
	for i, r := range rb.Rules {
		op, err := rule.ParseOperator(r.Operator)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i, r.Name, err)
		}
		clauses := make([]rule.Clause, len(r.If))
		for k, c := range r.If {
			clauses[k] = rule.Clause{Variable: c.Variable, Term: c.Term}
		}
		opts := []rule.Option{rule.WithName(r.Name)}
		if r.Weight != nil {
			opts = append(opts, rule.WithWeight(*r.Weight))
		}
		built, err := rule.New(rule.Clause{Variable: r.Then.Variable, Term: r.Then.Term}, op, clauses, opts...)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i, r.Name, err)
		}
		out = append(out, built)
	}

	return out, nil
}

// function resolves the membership function of t. Intervals and points are
// flattened into membership.New's parameter layout.
func (t Term) function() (membership.Function, error) {
	shape := t.Shape
	params := append([]float64(nil), t.Params...)
	switch {
	case len(t.Intervals) > 0:
		if shape == "" {
			shape = membership.ShapePiecewiseConstant.String()
		}
		flat, err := flatten(t.Intervals, 3, "interval")
		if err != nil {
			return nil, err
		}
		params = append(params, flat...)
	case len(t.Points) > 0:
		if shape == "" {
			shape = membership.ShapePiecewiseLinear.String()
		}
		flat, err := flatten(t.Points, 2, "point")
		if err != nil {
			return nil, err
		}
		params = append(params, flat...)
	}
	if shape == "" {
		return nil, fmt.Errorf("no shape: %w", ErrMalformed)
	}

	return membership.New(shape, params)
}

func flatten(rows [][]float64, width int, what string) ([]float64, error) {
	flat := make([]float64, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%s %d: want %d values, got %d: %w", what, i, width, len(row), ErrMalformed)
		}
		flat = append(flat, row...)
	}

	return flat, nil
}
