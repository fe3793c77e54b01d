// SPDX-License-Identifier: MIT

package inference

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/rule"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// RuleFiring reports one rule's firing strength in a call.
type RuleFiring struct {
	Index      int
	Name       string
	Consequent rule.Clause
	Strength   float64
}

// Detail is the full diagnostic record of one inference call.
type Detail struct {
	// Outputs holds the crisp value of every output that defuzzified or
	// fell back successfully.
	Outputs map[string]float64
	// Fuzzified holds the term degrees of every supplied input.
	Fuzzified map[string]variable.Degrees
	// Rules lists firing strengths in rule-base order.
	Rules []RuleFiring
	// Aggregates holds the aggregated membership per output.
	Aggregates map[string]*Aggregate
	// Fallbacks lists outputs whose configured fallback was substituted.
	Fallbacks []string
}

// Infer maps crisp inputs to crisp outputs.
//
// Every antecedent variable must be present and finite. Values outside a
// variable's universe are clamped. If some output cannot be defuzzified
// (ErrZeroMembershipArea without a fallback) the returned map still holds
// the other outputs and the error joins one wrapped error per failing output.
func (e *Engine) Infer(inputs map[string]float64) (map[string]float64, error) {
	d, err := e.InferDetailed(inputs)
	if d == nil {
		return nil, err
	}

	return d.Outputs, err
}

// InferDetailed is Infer plus diagnostics: fuzzified inputs, per-rule firing
// strengths and per-output aggregated membership. The crisp results are
// identical to Infer. The Detail is nil only when input validation fails.
func (e *Engine) InferDetailed(inputs map[string]float64) (*Detail, error) {
	start := time.Now()

	if err := e.checkInputs(inputs); err != nil {
		e.metrics.observe(outcomeInvalidInput, time.Since(start).Seconds())
		return nil, err
	}

	// Step 1: fuzzify every supplied input once.
	d := &Detail{
		Outputs:    make(map[string]float64, len(e.outputs)),
		Fuzzified:  make(map[string]variable.Degrees, len(inputs)),
		Rules:      make([]RuleFiring, len(e.rules)),
		Aggregates: make(map[string]*Aggregate, len(e.outputs)),
	}
	for name, x := range inputs {
		d.Fuzzified[name] = e.vars[name].Fuzzify(x)
	}

	// Step 2: firing strengths.
	strengths := make([]float64, len(e.rules))
	for i, r := range e.rules {
		s := r.FiringStrength(d.Fuzzified)
		strengths[i] = s
		d.Rules[i] = RuleFiring{Index: i, Name: e.ruleNames[i], Consequent: r.Consequent(), Strength: s}
		if s > 0 {
			e.metrics.ruleFired(e.ruleNames[i])
		}
	}

	// Steps 3-4: aggregate and defuzzify per output.
	outcome := outcomeOK
	var errs []error
	for _, name := range e.outputs {
		var agg *Aggregate
		if _, exact := e.breakpoints[name]; exact {
			agg = e.aggregateExact(name, strengths)
		} else {
			agg = e.aggregateSampled(name, strengths)
		}
		d.Aggregates[name] = agg

		crisp, err := agg.defuzzify()
		if err != nil {
			fb, ok := e.fallbacks[name]
			if ok && errors.Is(err, ErrZeroMembershipArea) {
				e.log.Warn("zero membership area, using fallback",
					zap.String("output", name), zap.Float64("fallback", fb))
				d.Outputs[name] = fb
				d.Fallbacks = append(d.Fallbacks, name)
				if outcome == outcomeOK {
					outcome = outcomeFallback
				}
				continue
			}
			outcome = outcomeZeroArea
			errs = append(errs, fmt.Errorf("output %q: %w", name, err))
			continue
		}
		d.Outputs[name] = crisp
	}

	if ce := e.log.Check(zap.DebugLevel, "inference"); ce != nil {
		ce.Write(
			zap.Any("inputs", inputs),
			zap.Float64s("strengths", strengths),
			zap.Any("outputs", d.Outputs),
			zap.String("outcome", outcome),
		)
	}
	e.metrics.observe(outcome, time.Since(start).Seconds())

	return d, errors.Join(errs...)
}

// checkInputs enforces presence of every antecedent variable, rejects
// undeclared or output variables and non-finite values.
func (e *Engine) checkInputs(inputs map[string]float64) error {
	for name, x := range inputs {
		if _, ok := e.vars[name]; !ok || e.isOut[name] {
			return fmt.Errorf("%q: %w", name, ErrUnknownInput)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%q=%g: %w", name, x, ErrInvalidInput)
		}
	}
	for _, name := range e.inputs {
		if _, ok := inputs[name]; !ok {
			return fmt.Errorf("%q: %w", name, ErrMissingInput)
		}
	}

	return nil
}
