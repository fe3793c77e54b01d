// SPDX-License-Identifier: MIT

package inference

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/rule"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// Engine is a configured, immutable rule base. Build one with Configure.
type Engine struct {
	vars     map[string]*variable.Variable
	varOrder []string

	inputs  []string // antecedent variables, first-appearance order
	outputs []string // consequent variables, first-appearance order
	isInput map[string]bool
	isOut   map[string]bool

	rules     []*rule.Rule
	ruleNames []string
	byOutput  map[string][]int

	// Per output: exact breakpoints when every consequent is a table,
	// otherwise the universe samples.
	breakpoints map[string][]float64
	samples     map[string][]float64

	fallbacks map[string]float64
	workers   int
	log       *zap.Logger
	metrics   *metrics
}

// Configure validates variables and rules once and returns an engine that
// can never be in an invalid state.
//
// Implementation:
//   - Stage 1: index variables; reject nil entries and duplicate names.
//   - Stage 2: validate every rule against the index; name unnamed rules
//     R1, R2, ... by position; reject duplicate names.
//   - Stage 3: classify variables as inputs or outputs; a variable cannot be both.
//   - Stage 4: precompute per-output aggregation grids (exact breakpoints,
//     or universe samples merged with every consequent's corners) and check
//     fallbacks.
//
// Errors: see package errors; all wrap lvfuzzy.ErrConfiguration.
func Configure(vars []*variable.Variable, rules []*rule.Rule, opts ...Option) (*Engine, error) {
	o := gatherOptions(opts...)
	if len(vars) == 0 || len(rules) == 0 {
		return nil, fmt.Errorf("%d variables, %d rules: %w", len(vars), len(rules), ErrEmptyRuleBase)
	}

	e := &Engine{
		vars:        make(map[string]*variable.Variable, len(vars)),
		isInput:     map[string]bool{},
		isOut:       map[string]bool{},
		byOutput:    map[string][]int{},
		breakpoints: map[string][]float64{},
		samples:     map[string][]float64{},
		fallbacks:   map[string]float64{},
		workers:     o.workers,
		log:         o.logger,
	}

	// Stage 1
	for i, v := range vars {
		if v == nil {
			return nil, fmt.Errorf("variable %d: %w", i, ErrNilComponent)
		}
		if _, dup := e.vars[v.Name()]; dup {
			return nil, fmt.Errorf("%q: %w", v.Name(), ErrDuplicateVariable)
		}
		e.vars[v.Name()] = v
		e.varOrder = append(e.varOrder, v.Name())
	}
	lookup := func(name string) (rule.TermSet, bool) {
		v, ok := e.vars[name]
		return v, ok
	}

	// Stage 2
	seen := map[string]bool{}
	for i, r := range rules {
		if r == nil {
			return nil, fmt.Errorf("rule %d: %w", i, ErrNilComponent)
		}
		if err := r.Validate(lookup); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		name := r.Name()
		if name == "" {
			name = fmt.Sprintf("R%d", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("rule %d %q: %w", i, name, ErrDuplicateRule)
		}
		seen[name] = true
		e.rules = append(e.rules, r)
		e.ruleNames = append(e.ruleNames, name)

		// Stage 3
		for _, c := range r.Antecedents() {
			if !e.isInput[c.Variable] {
				e.isInput[c.Variable] = true
				e.inputs = append(e.inputs, c.Variable)
			}
		}
		out := r.Consequent().Variable
		if !e.isOut[out] {
			e.isOut[out] = true
			e.outputs = append(e.outputs, out)
		}
		e.byOutput[out] = append(e.byOutput[out], i)
	}
	for _, name := range e.outputs {
		if e.isInput[name] {
			return nil, fmt.Errorf("%q: %w", name, ErrVariableRole)
		}
	}

	// Stage 4
	for _, name := range e.outputs {
		if bp, ok := e.exactBreakpoints(name); ok {
			e.breakpoints[name] = bp
			continue
		}
		xs, err := e.sampleGrid(name)
		if err != nil {
			return nil, fmt.Errorf("output %q: %w", name, err)
		}
		e.samples[name] = xs
	}
	for name, value := range o.fallbacks {
		if !e.isOut[name] {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownFallback)
		}
		e.fallbacks[name] = value
	}

	m, err := newMetrics(o.registerer)
	if err != nil {
		return nil, fmt.Errorf("inference: metrics: %w", err)
	}
	e.metrics = m

	e.log.Info("fuzzy engine configured",
		zap.Int("variables", len(e.vars)),
		zap.Int("rules", len(e.rules)),
		zap.Strings("inputs", e.inputs),
		zap.Strings("outputs", e.outputs),
		zap.Int("exact_outputs", len(e.breakpoints)),
	)

	return e, nil
}

// exactBreakpoints returns the sorted, deduplicated endpoints of every
// consequent table targeting output, clipped to its universe and including
// the universe bounds. ok is false if any consequent is not a table.
func (e *Engine) exactBreakpoints(output string) ([]float64, bool) {
	v := e.vars[output]
	u := v.Universe()
	bp := []float64{u.Min, u.Max}
	for _, ri := range e.byOutput[output] {
		term, err := v.Term(e.rules[ri].Consequent().Term)
		if err != nil {
			return nil, false
		}
		table, ok := term.Func.(*membership.PiecewiseConstant)
		if !ok {
			return nil, false
		}
		for _, x := range table.Breakpoints() {
			bp = append(bp, u.Clamp(x))
		}
	}
	sort.Float64s(bp)

	out := bp[:1]
	for _, x := range bp[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out, true
}

// sampleGrid returns the universe samples of output merged with the corners
// of every consequent targeting it, so no fired consequent falls between
// samples and unclipped linear shapes integrate exactly.
func (e *Engine) sampleGrid(output string) ([]float64, error) {
	v := e.vars[output]
	var corners []float64
	for _, ri := range e.byOutput[output] {
		term, err := v.Term(e.rules[ri].Consequent().Term)
		if err != nil {
			return nil, err
		}
		corners = append(corners, membership.Corners(term.Func)...)
	}

	return v.Universe().Grid(corners...)
}

// Variable returns a configured variable by name.
func (e *Engine) Variable(name string) (*variable.Variable, bool) {
	v, ok := e.vars[name]

	return v, ok
}

// Variables returns every configured variable name in declaration order.
func (e *Engine) Variables() []string { return append([]string(nil), e.varOrder...) }

// Inputs returns the antecedent variable names.
func (e *Engine) Inputs() []string { return append([]string(nil), e.inputs...) }

// Outputs returns the consequent variable names.
func (e *Engine) Outputs() []string { return append([]string(nil), e.outputs...) }

// Rules returns the rule base in evaluation order.
func (e *Engine) Rules() []*rule.Rule { return append([]*rule.Rule(nil), e.rules...) }

// RuleNames returns the effective rule names (explicit or R<n>).
func (e *Engine) RuleNames() []string { return append([]string(nil), e.ruleNames...) }
